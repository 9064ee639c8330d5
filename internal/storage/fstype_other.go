//go:build !linux && !darwin && !freebsd

package storage

func filesystemType(string) (string, error) { return "", errFSTypeUnknown }
