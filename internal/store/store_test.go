// internal/store/store_test.go
//
// Orchestrator behaviour: fallback, seed-once, and update semantics.
//
// Context
// -------
// fakeBackend lets each case script backend health without a database.
// Every test builds a fresh Store, so the availability state starts at
// unknown per case.
//
// Run: go test ./internal/store -v

package store

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/skjuv/portfolio/internal/portfolio"
)

// fakeBackend is an in-memory Backend with scriptable failures.
type fakeBackend struct {
	data    *portfolio.Data
	loadErr error
	saveErr error
	loads   int
	saves   int
}

func (f *fakeBackend) Load(context.Context) (*portfolio.Data, error) {
	f.loads++
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	if f.data == nil {
		return nil, ErrNotFound
	}
	return f.data.Clone(), nil
}

func (f *fakeBackend) Save(_ context.Context, d *portfolio.Data) error {
	f.saves++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.data = d.Clone()
	return nil
}

func TestRead_RemotePreferred(t *testing.T) {
	local := &fakeBackend{data: sampleData()}
	remoteData := sampleData()
	remoteData.Settings.SiteTitle = "remote copy"
	remote := &fakeBackend{data: remoteData}

	got, err := New(local, remote).Read(context.Background())
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got.Settings.SiteTitle != "remote copy" {
		t.Fatal("read did not come from the remote backend")
	}
	if local.loads != 0 {
		t.Fatal("local file touched although remote was healthy")
	}
}

func TestRead_RemoteDown_FallsBackAndStaysDown(t *testing.T) {
	local := &fakeBackend{data: sampleData()}
	remote := &fakeBackend{loadErr: errors.New("dial tcp: connection refused")}
	s := New(local, remote)
	ctx := context.Background()

	got, err := s.Read(ctx)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got.Settings.SiteTitle != "SKJUV" {
		t.Fatal("fallback did not serve the local file")
	}
	if remote.loads != 1 {
		t.Fatalf("remote.loads = %d, want 1", remote.loads)
	}

	// The dead remote must not be retried within the process lifetime.
	if _, err := s.Read(ctx); err != nil {
		t.Fatalf("second Read: %v", err)
	}
	if remote.loads != 1 {
		t.Fatalf("remote retried after being marked unavailable: loads = %d", remote.loads)
	}
	if local.loads != 2 {
		t.Fatalf("local.loads = %d, want 2", local.loads)
	}
}

func TestRead_SeedOnce(t *testing.T) {
	local := &fakeBackend{data: sampleData()}
	remote := &fakeBackend{} // healthy but empty
	s := New(local, remote)
	ctx := context.Background()

	// First read serves local content and seeds the remote.
	got, err := s.Read(ctx)
	if err != nil {
		t.Fatalf("first Read: %v", err)
	}
	if got.Settings.SiteTitle != "SKJUV" {
		t.Fatal("first read did not serve local content")
	}
	if remote.saves != 1 || remote.data == nil {
		t.Fatalf("remote not seeded: saves = %d", remote.saves)
	}

	// Second read comes from the remote without touching the file again.
	localLoads := local.loads
	if _, err := s.Read(ctx); err != nil {
		t.Fatalf("second Read: %v", err)
	}
	if local.loads != localLoads {
		t.Fatal("local file read again after successful seed")
	}
	if remote.loads != 2 {
		t.Fatalf("remote.loads = %d, want 2", remote.loads)
	}
}

func TestRead_SeedFailure_NonFatal(t *testing.T) {
	local := &fakeBackend{data: sampleData()}
	remote := &fakeBackend{saveErr: errors.New("permission denied")}

	got, err := New(local, remote).Read(context.Background())
	if err != nil {
		t.Fatalf("Read must succeed despite seed failure: %v", err)
	}
	if got.Settings.SiteTitle != "SKJUV" {
		t.Fatal("read did not return the local data in hand")
	}
}

func TestRead_BothBackendsFail(t *testing.T) {
	local := &fakeBackend{loadErr: errors.New("disk error")}
	remote := &fakeBackend{loadErr: errors.New("network error")}

	if _, err := New(local, remote).Read(context.Background()); err == nil {
		t.Fatal("Read succeeded with no working backend")
	}
}

func TestRead_FileOnlyMode(t *testing.T) {
	local := &fakeBackend{data: sampleData()}

	got, err := New(local, nil).Read(context.Background())
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got == nil || local.loads != 1 {
		t.Fatal("file-only mode did not serve the local file")
	}
}

func TestWrite_RemoteFailure_LandsLocally(t *testing.T) {
	local := &fakeBackend{}
	remote := &fakeBackend{saveErr: errors.New("write timeout")}
	s := New(local, remote)
	ctx := context.Background()

	if err := s.Write(ctx, sampleData()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if local.data == nil {
		t.Fatal("update lost: local backend holds nothing")
	}

	// Remote stays downgraded for subsequent writes.
	if err := s.Write(ctx, sampleData()); err != nil {
		t.Fatalf("second Write: %v", err)
	}
	if remote.saves != 1 {
		t.Fatalf("remote retried after write failure: saves = %d", remote.saves)
	}
}

func TestUpdate_AddProject_TouchesOnlyProjects(t *testing.T) {
	local := &fakeBackend{data: sampleData()}
	s := New(local, nil)

	before, _ := s.Read(context.Background())
	got, err := s.Update(context.Background(), func(d *portfolio.Data) *portfolio.Data {
		d.Projects = append(d.Projects, portfolio.Project{ID: "new", Title: "New Project"})
		return d
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if len(got.Projects) != len(before.Projects)+1 {
		t.Fatalf("projects len = %d, want %d", len(got.Projects), len(before.Projects)+1)
	}
	if !reflect.DeepEqual(got.Sections, before.Sections) ||
		!reflect.DeepEqual(got.Certifications, before.Certifications) ||
		!reflect.DeepEqual(got.Settings, before.Settings) ||
		!reflect.DeepEqual(got.ChatBot, before.ChatBot) {
		t.Fatal("update mutated collections outside projects")
	}

	// The persisted copy matches the returned one.
	after, _ := s.Read(context.Background())
	if !reflect.DeepEqual(after, got) {
		t.Fatal("persisted record differs from returned record")
	}
}

func TestUpdate_FilterCertification(t *testing.T) {
	local := &fakeBackend{data: sampleData()} // holds cert-1, cert-2, cert-3
	s := New(local, nil)

	got, err := s.Update(context.Background(), func(d *portfolio.Data) *portfolio.Data {
		kept := d.Certifications[:0]
		for _, c := range d.Certifications {
			if c.ID != "cert-1" {
				kept = append(kept, c)
			}
		}
		d.Certifications = kept
		return d
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	ids := make([]string, len(got.Certifications))
	for i, c := range got.Certifications {
		ids[i] = c.ID
	}
	if !reflect.DeepEqual(ids, []string{"cert-2", "cert-3"}) {
		t.Fatalf("certifications = %v, want [cert-2 cert-3]", ids)
	}
}

func TestUpdate_TransformGetsAClone(t *testing.T) {
	local := &fakeBackend{data: sampleData()}
	s := New(local, nil)
	ctx := context.Background()

	before, _ := s.Read(ctx)
	beforeTitle := before.Settings.SiteTitle

	_, err := s.Update(ctx, func(d *portfolio.Data) *portfolio.Data {
		d.Settings.SiteTitle = "mutated"
		return d
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if before.Settings.SiteTitle != beforeTitle {
		t.Fatal("transform mutated the caller's copy of the record")
	}
}
