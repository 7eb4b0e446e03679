package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"
)

// errNoInput is returned when the arguments select no file.
var errNoInput = errors.New("no input files")

// selector picks description files out of directories. Patterns use '/' as
// the separator and match paths relative to the directory being walked.
type selector struct {
	include []glob.Glob
	exclude []glob.Glob
}

func newSelector(include, exclude []string) (*selector, error) {
	in, err := compileGlobs(include)
	if err != nil {
		return nil, err
	}
	ex, err := compileGlobs(exclude)
	if err != nil {
		return nil, err
	}
	return &selector{include: in, exclude: ex}, nil
}

func compileGlobs(patterns []string) ([]glob.Glob, error) {
	out := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", p, err)
		}
		out = append(out, g)
	}
	return out, nil
}

func matchAny(gs []glob.Glob, s string) bool {
	for _, g := range gs {
		if g.Match(s) {
			return true
		}
	}
	return false
}

// expand turns file and directory arguments into a file list. Files named
// directly are always kept; directories are walked in lexical order.
func (s *selector) expand(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			rel, err := filepath.Rel(arg, path)
			if err != nil {
				return err
			}
			rel = filepath.ToSlash(rel)
			if rel == "." {
				return nil
			}
			if matchAny(s.exclude, rel) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if !d.IsDir() && matchAny(s.include, rel) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	if len(files) == 0 {
		return nil, errNoInput
	}
	return files, nil
}
