package fileinfo

import "io/fs"

// Permissions renders the nine rwx characters of mode. Setuid and setgid
// show as s/S in the owner and group execute slots, sticky as t/T in the
// other slot; the letter is uppercase when the execute bit is missing.
func Permissions(mode fs.FileMode) string {
	perm := uint32(mode.Perm())
	buf := make([]byte, 0, 9)
	buf = appendTriple(buf, perm>>6, mode&fs.ModeSetuid != 0, 's')
	buf = appendTriple(buf, perm>>3, mode&fs.ModeSetgid != 0, 's')
	buf = appendTriple(buf, perm, mode&fs.ModeSticky != 0, 't')
	return string(buf)
}

func appendTriple(buf []byte, rwx uint32, special bool, char byte) []byte {
	buf = append(buf, bit(rwx&4 != 0, 'r'), bit(rwx&2 != 0, 'w'))
	exec := rwx&1 != 0
	switch {
	case special && exec:
		return append(buf, char)
	case special:
		return append(buf, char-'a'+'A')
	default:
		return append(buf, bit(exec, 'x'))
	}
}

func bit(set bool, c byte) byte {
	if set {
		return c
	}
	return '-'
}
