package constants

import "strings"

// AudioExtensions holds the allowed audio extensions for submitted voice notes.
var AudioExtensions = map[string]struct{}{
	"wav":  {},
	"mp3":  {},
	"m4a":  {},
	"webm": {},
	"ogg":  {},
}

// ImageExtensions holds the allowed image extensions for receipt photos.
var ImageExtensions = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsAudioExt reports whether ext (with or without dot) is an allowed audio extension.
func IsAudioExt(ext string) bool {
	_, ok := AudioExtensions[NormalizeExt(ext)]
	return ok
}

// IsImageExt reports whether ext (with or without dot) is an allowed image extension.
func IsImageExt(ext string) bool {
	_, ok := ImageExtensions[NormalizeExt(ext)]
	return ok
}
