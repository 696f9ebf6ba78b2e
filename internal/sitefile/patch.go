// Package sitefile splices rendered card fragments into the site's existing
// HTML files and manages the backup copies written before each splice.
//
// The matching deliberately stays textual: the collaborator files are
// hand-maintained and a DOM round-trip would reformat them wholesale. The
// contract is the one the site's pages already satisfy: a section carrying
// the target id that contains a <div class="recipe-card-grid">.
package sitefile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/whale1510/recipectl/internal/debug"
)

var (
	// ErrSectionNotFound means the target file has no section with the
	// requested id. The file is left untouched.
	ErrSectionNotFound = errors.New("section not found")
	// ErrGridNotFound means the section exists but holds no card grid.
	ErrGridNotFound = errors.New("recipe-card-grid not found")
)

const gridOpenTag = `<div class="recipe-card-grid">`

// writeFile is swapped out in tests to exercise the restore path.
var writeFile = atomicWriteFile

// InsertCard inserts cardHTML into the card grid of the section with
// sectionID in the file at path. The fragment lands after the last existing
// card, or directly after the grid's opening tag when the grid is empty.
//
// A timestamped backup is written first; its path is returned even on
// failure so the caller can report it. If anything fails after the target
// has been matched, the backup is copied back over the file.
func InsertCard(path, cardHTML, sectionID string) (backupPath string, err error) {
	backupPath, err = Backup(path)
	if err != nil {
		return "", err
	}
	if backupPath != "" {
		debug.Logf("sitefile: backup created: %s\n", backupPath)
	}

	data, err := os.ReadFile(path) // #nosec G304 -- caller-controlled site file
	if err != nil {
		return backupPath, fmt.Errorf("read %s: %w", path, err)
	}
	content := string(data)

	newContent, err := spliceCard(content, cardHTML, sectionID)
	if err != nil {
		// No match means nothing was written; leave the file as-is.
		return backupPath, err
	}

	if err := writeFile(path, []byte(newContent)); err != nil {
		if backupPath != "" {
			if rerr := Restore(backupPath, path); rerr != nil {
				return backupPath, fmt.Errorf("write %s: %w (restore also failed: %v)", path, err, rerr)
			}
			debug.Logf("sitefile: restored %s from backup\n", path)
		}
		return backupPath, fmt.Errorf("write %s: %w", path, err)
	}
	return backupPath, nil
}

// spliceCard returns content with cardHTML inserted into the card grid of
// the section carrying sectionID.
func spliceCard(content, cardHTML, sectionID string) (string, error) {
	sectionRe := regexp.MustCompile(`(?s)<section[^>]*id="` + regexp.QuoteMeta(sectionID) + `"[^>]*>(.*?)</section>`)
	loc := sectionRe.FindStringSubmatchIndex(content)
	if loc == nil {
		return "", fmt.Errorf("%w: #%s", ErrSectionNotFound, sectionID)
	}
	sectionStart, sectionContentStart, sectionContentEnd := loc[0], loc[2], loc[3]
	sectionContent := content[sectionContentStart:sectionContentEnd]

	gridRe := regexp.MustCompile(`(?s)` + regexp.QuoteMeta(gridOpenTag) + `(.*?)</div>`)
	gloc := gridRe.FindStringSubmatchIndex(sectionContent)
	if gloc == nil {
		return "", fmt.Errorf("%w: in section #%s", ErrGridNotFound, sectionID)
	}
	gridContent := sectionContent[gloc[2]:gloc[3]]

	var insertAt int
	if last := strings.LastIndex(gridContent, "</article>"); last == -1 {
		// Empty grid: insert right after the opening tag.
		insertAt = sectionStart + strings.Index(content[sectionStart:], gridOpenTag) + len(gridOpenTag)
	} else {
		insertAt = sectionContentStart + gloc[2] + last + len("</article>")
	}

	return content[:insertAt] + "\n" + cardHTML + content[insertAt:], nil
}

// atomicWriteFile writes data to a temp file in the target's directory and
// renames it into place.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
