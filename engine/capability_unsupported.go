//go:build !(amd64 || arm64)

package engine

// No compiler backend exists for this platform; only headless execution of
// pre-compiled (or interpreted) modules is available.
const platformExec = CapExecObjectFile
