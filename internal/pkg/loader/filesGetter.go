package loader

import (
	"os"
	"path/filepath"

	"bitbucket.org/adfreiburg/dehyph/internal/pkg/cmdapp"
	"github.com/pkg/errors"
)

// LocalFileList loads corpus file list from local disk dir.
type LocalFileList struct {
	// Path is the main folder to start look from
	Path string
}

//NewLocalFileList creates LocalFileList instance.
func NewLocalFileList(path string) (*LocalFileList, error) {
	cmdapp.Log.Infof("Init LocalFileList at: %s", path)
	if path == "" {
		return nil, errors.New("no path provided")
	}
	f := LocalFileList{Path: path}
	return &f, nil
}

// List returns regular files in the directory
func (fs *LocalFileList) List() ([]string, error) {
	var files []string
	entries, err := os.ReadDir(fs.Path)
	if err != nil {
		return files, err
	}
	for _, e := range entries {
		if !e.IsDir() {
			files = append(files, filepath.Join(fs.Path, e.Name()))
		}
	}
	return files, nil
}
