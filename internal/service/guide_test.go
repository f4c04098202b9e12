package service

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeGuidePage(t *testing.T, dir, slug, title string) {
	t.Helper()
	page := "---\ntitle: " + title + "\nsummary: summary of " + slug + "\n---\n\n# " + title + "\n\nBody text.\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, slug+".md"), []byte(page), 0644))
}

func guideContentDir(t *testing.T) string {
	t.Helper()
	contentDir := t.TempDir()
	guideDir := filepath.Join(contentDir, "guide")
	require.NoError(t, os.MkdirAll(guideDir, 0755))
	writeGuidePage(t, guideDir, "annual-list", "Annual List Filing")
	writeGuidePage(t, guideDir, "registered-agent", "Registered Agent Requirements")
	return contentDir
}

func TestGuidePagesSortedByTitle(t *testing.T) {
	svc := NewGuideService(guideContentDir(t))

	pages, err := svc.Pages()
	require.NoError(t, err)
	require.Len(t, pages, 2)
	assert.Equal(t, "Annual List Filing", pages[0].Title)
	assert.Equal(t, "Registered Agent Requirements", pages[1].Title)
	assert.Equal(t, "summary of annual-list", pages[0].Summary)
	assert.Contains(t, pages[0].Content, "Body text.")
}

func TestGuidePageUnknownSlug(t *testing.T) {
	svc := NewGuideService(guideContentDir(t))

	_, err := svc.Page("no-such-page")
	assert.ErrorIs(t, err, ErrGuidePageNotFound)
}

func TestGuideMissingDirIsEmptyNotError(t *testing.T) {
	svc := NewGuideService(filepath.Join(t.TempDir(), "nowhere"))

	pages, err := svc.Pages()
	require.NoError(t, err)
	assert.Empty(t, pages)

	_, err = svc.Page("annual-list")
	assert.ErrorIs(t, err, ErrGuidePageNotFound)
}

func TestGuideLoadFailureIsNotNotFound(t *testing.T) {
	// content/guide exists but is a regular file, so reading it fails with
	// something other than ErrNotExist
	contentDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(contentDir, "guide"), []byte("not a directory"), 0644))

	svc := NewGuideService(contentDir)

	_, err := svc.Pages()
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrGuidePageNotFound)

	_, err = svc.Page("annual-list")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrGuidePageNotFound)
}

func TestGuideConcurrentReads(t *testing.T) {
	svc := NewGuideService(guideContentDir(t))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			pages, err := svc.Pages()
			assert.NoError(t, err)
			assert.Len(t, pages, 2)
		}()
		go func() {
			defer wg.Done()
			page, err := svc.Page("annual-list")
			assert.NoError(t, err)
			assert.Equal(t, "Annual List Filing", page.Title)
		}()
	}
	wg.Wait()
}
