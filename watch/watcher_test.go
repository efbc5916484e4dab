package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_MissingDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "absent", "table.txt"))
	assert.Error(t, err)
}

func TestRun_InitialInvocation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.txt")
	require.NoError(t, os.WriteFile(path, []byte("1 A first\n"), 0o644))

	w, err := New(path)
	require.NoError(t, err)
	defer w.Close()

	calls := make(chan struct{}, 8)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func() error {
			calls <- struct{}{}
			return nil
		})
	}()

	select {
	case <-calls:
	case <-time.After(2 * time.Second):
		t.Fatal("callback not invoked on start")
	}

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRun_RegeneratesOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.txt")
	require.NoError(t, os.WriteFile(path, []byte("1 A first\n"), 0o644))

	w, err := New(path)
	require.NoError(t, err)
	defer w.Close()
	w.debounce = 20 * time.Millisecond

	calls := make(chan struct{}, 8)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	go w.Run(ctx, func() error {
		calls <- struct{}{}
		return nil
	})

	// Initial invocation.
	select {
	case <-calls:
	case <-time.After(2 * time.Second):
		t.Fatal("callback not invoked on start")
	}

	require.NoError(t, os.WriteFile(path, []byte("1 A first\n2 B second\n"), 0o644))

	select {
	case <-calls:
	case <-time.After(5 * time.Second):
		t.Fatal("callback not invoked after write")
	}
}

func TestRun_CallbackErrorReported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.txt")
	require.NoError(t, os.WriteFile(path, []byte("1 A first\n"), 0o644))

	w, err := New(path)
	require.NoError(t, err)
	defer w.Close()

	errs := make(chan error, 1)
	w.OnError = func(err error) { errs <- err }

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fail := errors.New("regenerate failed")
	go w.Run(ctx, func() error { return fail })

	select {
	case err := <-errs:
		assert.ErrorIs(t, err, fail)
	case <-time.After(2 * time.Second):
		t.Fatal("callback error not reported")
	}
}
