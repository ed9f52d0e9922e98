//go:build !unix

package fileinfo

import "io/fs"

type statInfo struct {
	uid, gid uint32
	nlink    uint64
	inode    uint64
}

// statDetails returns placeholder values on platforms where
// ownership information is not easily available
func statDetails(info fs.FileInfo) statInfo {
	return statInfo{nlink: 1}
}
