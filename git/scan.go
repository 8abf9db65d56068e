package git

import (
	"errors"
	"fmt"
	"io"
	"langtypes/lang"
	"langtypes/options"
	"langtypes/parallel"
	"langtypes/stats"
	"langtypes/util"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/avast/retry-go"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/filemode"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/storage/filesystem/dotgit"
	"github.com/gobwas/glob"
)

type repositoryProvider struct {
	repository      *git.Repository
	includePatterns []glob.Glob
	excludePatterns []glob.Glob
	selected        map[lang.Language]bool
	opts            *options.Options

	statsLock sync.Mutex
	stats     *stats.CodeStats
}

// Run scans the revision described by opts and writes the report to
// opts.OutputPath.
func Run(opts *options.Options) error {
	codeStats, err := Scan(opts)
	if err != nil {
		return err
	}
	return WriteReport(codeStats, opts.OutputPath)
}

// Scan classifies every file of the commit opts.Revision resolves to and
// returns per-language file and line counts.
func Scan(opts *options.Options) (codeStats *stats.CodeStats, err error) {
	if opts.Table == nil {
		opts.Table = lang.Default()
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}

	provider := &repositoryProvider{
		opts:  opts,
		stats: stats.NewCodeStats(),
	}

	if len(opts.Languages) > 0 {
		provider.selected = make(map[lang.Language]bool, len(opts.Languages))
		for _, l := range opts.Languages {
			provider.selected[l] = true
		}
	}

	provider.includePatterns, err = provider.compileGlobs(opts.IncludePatterns, "include")
	if err != nil {
		return nil, fmt.Errorf("failed to compile include patterns '%v': %v", opts.IncludePatterns, err)
	}
	excludePatterns := opts.ExcludePatterns
	if !opts.IncludeNoiseDirs {
		excludePatterns = append(util.NoisyDirectoryExclusionPatterns(), excludePatterns...)
	}
	provider.excludePatterns, err = provider.compileGlobs(excludePatterns, "exclude")
	if err != nil {
		return nil, fmt.Errorf("failed to compile exclude patterns '%v': %v", opts.ExcludePatterns, err)
	}

	provider.repository, err = git.PlainOpen(opts.ClonePath)
	if err != nil {
		return nil, &util.ErrorWithCode{
			StatusCode:    util.ERROR_BAD_CLONE_GIT,
			InternalError: err,
		}
	}

	var commit *object.Commit
	commit, err = provider.getCommit(opts.Revision)
	if err != nil {
		return nil, err
	}
	if commit == nil {
		provider.stats.Finalize()
		return provider.stats, nil
	}

	log.Printf("scanning commit '%v' for revision '%v' at clone '%v'", commit.ID(), opts.Revision, opts.ClonePath)

	count, err := provider.scan(commit)
	if err != nil {
		return nil, err
	}

	provider.stats.Finalize()
	log.Printf("classified %v of %v files in %v languages", provider.stats.TotalFileCount-provider.stats.UnclassifiedFileCount, count, len(provider.stats.CountersByLanguage))
	return provider.stats, nil
}

// WriteReport writes codeStats as JSON to outputPath, or to stdout when
// outputPath is options.StdoutPath.
func WriteReport(codeStats *stats.CodeStats, outputPath string) error {
	if outputPath == options.StdoutPath {
		return codeStats.WriteJSON(os.Stdout)
	}
	file, err := os.Create(outputPath)
	if err != nil {
		return &util.ErrorWithCode{
			StatusCode:    util.ERROR_BAD_OUTPUT_PATH,
			InternalError: fmt.Errorf("failed to create report at '%v': %w", outputPath, err),
		}
	}
	err = codeStats.WriteJSON(file)
	closeErr := file.Close()
	if err != nil {
		return err
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close report at '%v': %w", outputPath, closeErr)
	}
	log.Printf("written stats to '%v'", outputPath)
	return nil
}

func (provider *repositoryProvider) getCommit(commitish string) (*object.Commit, error) {

	_, err := provider.repository.Head()
	if err == plumbing.ErrReferenceNotFound {
		log.Printf("repository is detected as empty -- nothing to do")
		return nil, nil
	}

	hash, err := provider.repository.ResolveRevision(plumbing.Revision(commitish))
	if err != nil {
		return nil, &util.ErrorWithCode{
			StatusCode:    util.ERROR_NO_REVISION,
			InternalError: fmt.Errorf("failed to get revision '%v': %v", commitish, err),
		}
	}

	return provider.repository.CommitObject(*hash)
}

func expandPatternsIfNeeded(patterns []string) []string {
	for _, pattern := range patterns {
		if strings.HasPrefix(pattern, "*/") {
			patterns = append(patterns, strings.Replace(pattern, "*/", "", 1))
		}
		if strings.HasPrefix(pattern, "**/") {
			patterns = append(patterns, strings.Replace(pattern, "**/", "", 1))
		}
	}
	return patterns
}

func (provider *repositoryProvider) compileGlobs(patterns []string, title string) ([]glob.Glob, error) {
	patterns = expandPatternsIfNeeded(patterns)
	provider.verboseLog("%v %v patterns:\n%v", len(patterns), title, strings.Join(patterns, ", "))
	globs := make([]glob.Glob, len(patterns))
	for i, pattern := range patterns {
		compiled, err := glob.Compile(pattern)
		if err != nil {
			return nil, err
		}
		globs[i] = compiled
	}
	return globs, nil
}

func matches(filePath string, patterns []glob.Glob) bool {
	for _, pattern := range patterns {
		if pattern.Match(filePath) {
			return true
		}
	}
	return false
}

func (provider *repositoryProvider) verboseLog(format string, v ...interface{}) {
	if provider.opts.VerboseLogging {
		log.Printf(format, v...)
	}
}

// included applies mode, size and pattern filters to a tree file.
func (provider *repositoryProvider) included(file *object.File) bool {
	filePath := file.Name
	mode := file.Mode

	if !mode.IsFile() || mode.IsMalformed() || provider.isSymlink(filePath, mode) {
		provider.verboseLog("--- skipping '%v' - not regular file - mode: %v", filePath, mode)
		return false
	}

	if provider.opts.MaxFileSizeBytes > 0 && file.Size >= provider.opts.MaxFileSizeBytes {
		log.Printf("--- skipping '%v' - file size is too large to scan - %v", filePath, file.Size)
		return false
	}

	filePathToCheck := filePath
	if provider.opts.IgnoreCasePatterns {
		filePathToCheck = strings.ToLower(filePathToCheck)
	}

	skip := true
	hasIncludePatterns := len(provider.includePatterns) > 0
	if hasIncludePatterns && !matches(filePathToCheck, provider.includePatterns) {
		provider.verboseLog("--- skipping '%v' - not matching include patterns", filePath)
		return false
	} else if hasIncludePatterns {
		skip = false
	}

	if len(provider.excludePatterns) > 0 && matches(filePathToCheck, provider.excludePatterns) && skip {
		provider.verboseLog("--- skipping '%v' - matching exclude patterns", filePath)
		return false
	}

	if provider.opts.TextFilesOnly && util.NotTextExt(filepath.Ext(filePathToCheck)) {
		provider.verboseLog("--- skipping '%v' - not a text file", filePath)
		return false
	}

	return true
}

func (provider *repositoryProvider) readContents(file *object.File) ([]byte, error) {
	var contents []byte
	err := retry.Do(
		func() error {
			reader, readerErr := file.Blob.Reader()
			if readerErr != nil {
				return readerErr
			}
			defer func() {
				_ = reader.Close()
			}()
			var readErr error
			contents, readErr = io.ReadAll(reader)
			return readErr
		},
		retry.Attempts(3),
		retry.Delay(50*time.Millisecond),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get git file contents for '%v': %w", file.Name, err)
	}
	return contents, nil
}

// classifyFile records one tree file. Blob contents are read on the calling
// goroutine; decoding and counting run on the job queue.
func (provider *repositoryProvider) classifyFile(file *object.File, queue *parallel.JobQueue) error {
	if !provider.included(file) {
		return nil
	}

	table := provider.opts.Table
	language, found := table.FromPath(file.Name)
	if provider.selected != nil && (!found || !provider.selected[language]) {
		provider.verboseLog("--- skipping '%v' - language not selected", file.Name)
		return nil
	}
	if !found {
		provider.verboseLog("??? '%v' - no language for extension", file.Name)
		provider.addUnclassified(file.Size)
		return nil
	}

	name := table.Name(language)
	if util.NotTextExt(filepath.Ext(file.Name)) {
		provider.verboseLog("+++ '%v' - %v (binary)", file.Name, name)
		provider.addFile(name, 0, file.Size)
		return nil
	}

	contents, err := provider.readContents(file)
	if err != nil {
		return err
	}

	builtin := builtinLanguage(table, language)
	return queue.Add(func() error {
		linesOfCode, countErr := countLinesOfCode(contents, builtin)
		if countErr != nil {
			return fmt.Errorf("failed to count lines of '%v': %w", file.Name, countErr)
		}
		provider.verboseLog("+++ '%v' - %v, %v lines", file.Name, name, linesOfCode)
		provider.addFile(name, linesOfCode, file.Size)
		return nil
	})
}

// builtinLanguage maps a language of any table to the built-in language of
// the same canonical name, so comment rules apply to custom tables too.
func builtinLanguage(table *lang.Table, l lang.Language) lang.Language {
	if table == lang.Default() {
		return l
	}
	builtin, _ := lang.FromName(table.Name(l))
	return builtin
}

func (provider *repositoryProvider) addFile(language string, linesOfCode int, sizeBytes int64) {
	provider.statsLock.Lock()
	defer provider.statsLock.Unlock()
	provider.stats.AddFile(language, linesOfCode, sizeBytes)
}

func (provider *repositoryProvider) addUnclassified(sizeBytes int64) {
	provider.statsLock.Lock()
	defer provider.statsLock.Unlock()
	provider.stats.AddUnclassifiedFile(sizeBytes)
}

func (provider *repositoryProvider) scan(commit *object.Commit) (int, error) {

	tree, err := commit.Tree()
	if err != nil {
		return 0, &util.ErrorWithCode{
			StatusCode:    util.ERROR_TREE_NOT_FOUND,
			InternalError: fmt.Errorf("failed to get tree of commit '%v': %v", commit.Hash, err),
		}
	}

	queue := parallel.CreateJobQueue(provider.opts.Workers*2, provider.opts.Workers)
	defer queue.Close()

	count := 0
	err = tree.Files().ForEach(func(file *object.File) error {
		count++
		return provider.classifyFile(file, queue)
	})
	waitErr := queue.Wait()
	if err != nil {
		if errors.Is(err, dotgit.ErrPackfileNotFound) {
			return 0, &util.ErrorWithCode{
				StatusCode:    util.ERROR_BAD_CLONE_GIT,
				InternalError: err,
			}
		}
		if errors.Is(err, plumbing.ErrObjectNotFound) {
			return 0, &util.ErrorWithCode{
				StatusCode:    util.ERROR_NO_REVISION,
				InternalError: err,
			}
		}
		return 0, fmt.Errorf("failed to iterate files of %v: %v", commit.Hash, err)
	}
	if waitErr != nil {
		return 0, waitErr
	}
	provider.verboseLog("iterated %v files for %v", count, commit.Hash)
	return count, nil
}

func (provider *repositoryProvider) isSymlink(filePath string, mode filemode.FileMode) bool {
	osMode, err := mode.ToOSFileMode()
	if err != nil {
		provider.verboseLog("failed to parse os file permissions for '%v': %v", filePath, err)
		return false
	}
	return osMode&os.ModeSymlink != 0
}
