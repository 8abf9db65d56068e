package util

var noisyDirectoryNames = []string{
	".git",
	".idea",
	".vscode",
	"__pycache__",
	"bin",
	"bower_components",
	"build",
	"dist",
	"node_modules",
	"obj",
	"site-packages",
	"target",
	"vendor",
	"venv",
}

// NoisyDirectoryExclusionPatterns returns glob patterns matching any path
// under a dependency, build output or tooling directory.
func NoisyDirectoryExclusionPatterns() []string {
	patterns := make([]string, 0, len(noisyDirectoryNames))
	for _, name := range noisyDirectoryNames {
		patterns = append(patterns, "**/"+name+"/**")
	}
	return patterns
}
