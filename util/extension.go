package util

import "strings"

// binaryExtensions are file extensions whose contents are never source text,
// even when the language table classifies them (class, jar, pyc).
var (
	binaryExtensions = []string{
		"7z",
		"aac",
		"ai",
		"apk",
		"ar",
		"avi",
		"bin",
		"bmp",
		"bz2",
		"cab",
		"cbr",
		"cbz",
		"class",
		"crx",
		"css",
		"deb",
		"dmg",
		"doc",
		"docx",
		"dwg",
		"dxf",
		"ebook",
		"egg",
		"eot",
		"eps",
		"epub",
		"exe",
		"flac",
		"flv",
		"gif",
		"gpx",
		"gz",
		"iso",
		"jar",
		"jpeg",
		"jpg",
		"kml",
		"kmz",
		"m4a",
		"mkv",
		"mobi",
		"mov",
		"mp3",
		"mp4",
		"mpeg",
		"mpg",
		"msg",
		"msi",
		"odp",
		"ods",
		"ogg",
		"ogm",
		"otf",
		"pak",
		"pdf",
		"pickle",
		"pkl",
		"png",
		"ppt",
		"ps",
		"psd",
		"pyc",
		"rar",
		"rpm",
		"rst",
		"rtf",
		"s7z",
		"shar",
		"sketch",
		"svg",
		"tar",
		"tbz2",
		"tgz",
		"tif",
		"tiff",
		"tlz",
		"ttf",
		"war",
		"wav",
		"webp",
		"whl",
		"wma",
		"wmv",
		"woff",
		"woff2",
		"xls",
		"xlsx",
		"xpi",
		"zip",
		"zipx",
	}
	binaryExtensionsMap map[string]bool
)

func init() {
	binaryExtensionsMap = make(map[string]bool, len(binaryExtensions))
	for _, ext := range binaryExtensions {
		binaryExtensionsMap[ext] = true
	}
}

// NotTextExt reports whether a file with extension ext (with or without the
// leading dot) should be treated as binary. Files without extension are.
func NotTextExt(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	if len(ext) == 0 {
		return true
	}
	return binaryExtensionsMap[strings.ToLower(ext)]
}
