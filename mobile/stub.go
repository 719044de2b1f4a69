//go:build !mobile

package mobile

// Dummy keeps the package importable in builds without the mobile tag.
func Dummy() {}
