//go:build !tracy_verify

package tracy

const defaultMisorderPolicy = MisorderIgnore
