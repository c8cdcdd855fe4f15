package fsops_test

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsops-project/fsops/pkg/fsops"
)

func TestWithTemporaryFile_DeletedOnExit(t *testing.T) {
	var path string
	err := fsops.WithTemporaryFile(".txt", false, func(tf *fsops.TempFile) error {
		path = tf.Path()
		_, err := tf.WriteString("scratch")
		return err
	})
	require.NoError(t, err)
	require.NotEmpty(t, path)
	assert.NoFileExists(t, path)
}

func TestWithTemporaryFile_KeptOnRequest(t *testing.T) {
	var path string
	err := fsops.WithTemporaryFile(".txt", true, func(tf *fsops.TempFile) error {
		path = tf.Path()
		_, err := tf.WriteString("survivor")
		return err
	})
	require.NoError(t, err)
	t.Cleanup(func() { os.Remove(path) })

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "survivor", string(content))
}

func TestWithTemporaryFile_CleanedUpOnError(t *testing.T) {
	boom := errors.New("boom")
	var path string
	err := fsops.WithTemporaryFile(".txt", false, func(tf *fsops.TempFile) error {
		path = tf.Path()
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.NoFileExists(t, path)
}

func TestWithTemporaryFile_Suffix(t *testing.T) {
	err := fsops.WithTemporaryFile(".log", false, func(tf *fsops.TempFile) error {
		assert.Regexp(t, `\.log$`, tf.Path())
		return nil
	})
	require.NoError(t, err)
}
