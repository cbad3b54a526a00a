package profile

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pointeraccel "github.com/tphakala/go-pointer-accel"
)

func TestProfile_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.toml")

	p := Default()
	p.Acceleration = 0.09
	p.Mode = "motivity"
	p.Midpoint = 5
	require.NoError(t, p.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, p, *got)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.toml")
	require.NoError(t, os.WriteFile(path, []byte("acceleration = 0.2\n"), 0o644))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.2, got.Acceleration)
	assert.Equal(t, pointeraccel.DefaultSensitivity, got.Sensitivity)
	assert.Equal(t, "linear", got.Mode)
}

func TestLoad_MissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestProfile_Pending(t *testing.T) {
	p := Default()
	p.Acceleration = 0.125
	p.Mode = "classic"

	pending := p.Pending()
	assert.Equal(t, "0.125", pending.Acceleration)
	assert.Equal(t, "1", pending.Sensitivity)
	assert.Equal(t, "classic", pending.Mode)
}

func TestProfile_ApplyReachesEngine(t *testing.T) {
	cfg := pointeraccel.DefaultConfig()
	acc, err := pointeraccel.New(&cfg)
	require.NoError(t, err)

	p := Default()
	p.Sensitivity = 3
	p.Acceleration = 0
	p.Apply(acc)

	// Adoption happens inside Process.
	out, outcome := acc.Process(pointeraccel.MotionEvent{DX: 10}, time.Unix(50, 0), true)
	require.Equal(t, pointeraccel.OutcomeProcessed, outcome)
	assert.Equal(t, int32(30), out.DX)
	assert.Equal(t, 3.0, acc.Tuning().Sensitivity)
}

func TestWatcher_ReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.toml")

	p := Default()
	require.NoError(t, p.Save(path))

	reloaded := make(chan *Profile, 4)
	w, err := Watch(path, func(p *Profile) { reloaded <- p }, nil)
	require.NoError(t, err)
	defer w.Close()

	p.Acceleration = 0.5
	require.NoError(t, p.Save(path))

	select {
	case got := <-reloaded:
		assert.Equal(t, 0.5, got.Acceleration)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not report the profile change")
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.toml")

	p := Default()
	require.NoError(t, p.Save(path))

	reloaded := make(chan *Profile, 4)
	w, err := Watch(path, func(p *Profile) { reloaded <- p }, nil)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644))

	select {
	case <-reloaded:
		t.Fatal("unrelated file change triggered a reload")
	case <-time.After(600 * time.Millisecond):
	}
}
