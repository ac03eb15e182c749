package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Jaeki-Lee/mini-cloud/src/models"
	"github.com/Jaeki-Lee/mini-cloud/src/openstack"
)

func TestInstanceOperationsRequireProject(t *testing.T) {
	svc := NewInstanceService(openstack.NewComputeClient("http://127.0.0.1:0", time.Second), testLogger())
	sess := models.Session{Token: "tok-abc", ExpiresAt: time.Now().Add(time.Hour)}

	if _, err := svc.List(context.Background(), sess); !errors.Is(err, models.ErrNoProject) {
		t.Fatalf("List: got %v, want ErrNoProject", err)
	}
	if _, err := svc.Get(context.Background(), sess, "srv-1"); !errors.Is(err, models.ErrNoProject) {
		t.Fatalf("Get: got %v, want ErrNoProject", err)
	}
	if _, err := svc.Create(context.Background(), sess, models.CreateInstanceRequest{Name: "x"}); !errors.Is(err, models.ErrNoProject) {
		t.Fatalf("Create: got %v, want ErrNoProject", err)
	}
	if err := svc.PerformAction(context.Background(), sess, "srv-1", models.ActionStart, false); !errors.Is(err, models.ErrNoProject) {
		t.Fatalf("PerformAction: got %v, want ErrNoProject", err)
	}
}

func TestInstanceActionValid(t *testing.T) {
	valid := []models.InstanceAction{
		models.ActionStart, models.ActionStop, models.ActionRestart,
		models.ActionPause, models.ActionUnpause, models.ActionSuspend,
		models.ActionResume, models.ActionDelete,
	}
	for _, a := range valid {
		if !a.Valid() {
			t.Errorf("%s should be valid", a)
		}
	}
	for _, a := range []models.InstanceAction{"", "start", "EXPLODE"} {
		if a.Valid() {
			t.Errorf("%q should not be valid", a)
		}
	}
}
