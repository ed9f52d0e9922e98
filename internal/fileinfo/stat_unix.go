//go:build unix

package fileinfo

import (
	"io/fs"
	"syscall"
)

type statInfo struct {
	uid, gid uint32
	nlink    uint64
	inode    uint64
}

// statDetails extracts ownership, link count and inode on Unix-like systems
func statDetails(info fs.FileInfo) statInfo {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return statInfo{nlink: 1}
	}
	return statInfo{
		uid:   stat.Uid,
		gid:   stat.Gid,
		nlink: uint64(stat.Nlink),
		inode: uint64(stat.Ino),
	}
}
