//go:build !(386 || amd64 || arm64 || ppc64 || ppc64le || s390x)

package ethernet

const wordCompare = false
