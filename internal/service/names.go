package service

import (
	"path/filepath"
	"strings"
)

const (
	Suffix = ".huff"
	// 원래 이름을 알 수 없을 때
	FallbackName = "decompressed_file"
)

// CompressedFileName appends the codec suffix to the base name.
func CompressedFileName(name string) string {
	if name = baseName(name); name == "" {
		name = "file"
	}
	return name + Suffix
}

// OriginalFileName strips the codec suffix; a name without it maps to
// FallbackName.
func OriginalFileName(name string) string {
	name = baseName(name)
	if !strings.HasSuffix(name, Suffix) {
		return FallbackName
	}
	if orig := strings.TrimSuffix(name, Suffix); orig != "" {
		return orig
	}
	return FallbackName
}

// 업로드 이름의 디렉터리 부분은 버려요.
func baseName(name string) string {
	name = strings.ReplaceAll(name, `\`, "/")
	name = filepath.Base(filepath.ToSlash(name))
	if name == "." || name == "/" {
		return ""
	}
	return name
}
