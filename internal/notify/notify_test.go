package notify

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/example/trishade/internal/platform"
)

type sent struct {
	title, body string
	opts        platform.Options
	iconExisted bool
}

func recorder(n *Notifier) *[]sent {
	var got []sent
	n.send = func(title, body string, opts platform.Options) error {
		_, err := os.Stat(opts.IconPath)
		got = append(got, sent{title, body, opts, opts.IconPath != "" && err == nil})
		return nil
	}
	return &got
}

func TestDisabledEventsAreSilent(t *testing.T) {
	n := New(DefaultPreferences())
	got := recorder(n)
	n.Save("out.png")
	n.Copy("", nil)
	if len(*got) != 0 {
		t.Fatalf("disabled notifier sent %v", *got)
	}
	var nilNotifier *Notifier
	nilNotifier.Save("x")
	nilNotifier.Enable(EventSave, true)
}

func TestSaveUsesAbsolutePathAndPNGIcon(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.png")
	if err := os.WriteFile(path, []byte("png"), 0o644); err != nil {
		t.Fatal(err)
	}
	n := New(DefaultPreferences())
	got := recorder(n)
	n.Enable(EventSave, true)
	n.Save(path)
	n.Save(filepath.Join(dir, "scene.pdf"))

	if len(*got) != 2 {
		t.Fatalf("expected two notifications, got %d", len(*got))
	}
	if (*got)[0].body != "Saved "+path || (*got)[0].opts.IconPath != path {
		t.Fatalf("unexpected png notification %+v", (*got)[0])
	}
	if (*got)[1].opts.IconPath != "" {
		t.Fatalf("pdf should not be used as icon: %+v", (*got)[1])
	}
	if (*got)[0].title != "trishade" {
		t.Fatalf("title %q", (*got)[0].title)
	}
}

func TestCopyPreview(t *testing.T) {
	n := New(DefaultPreferences())
	got := recorder(n)
	n.Enable(EventCopy, true)
	n.Copy("", image.NewRGBA(image.Rect(0, 0, 4, 4)))
	if len(*got) != 1 {
		t.Fatalf("expected one notification, got %d", len(*got))
	}
	c := (*got)[0]
	if c.body != "Copied scene to clipboard" {
		t.Fatalf("body %q", c.body)
	}
	if !c.iconExisted {
		t.Fatal("preview icon missing while notifying")
	}
	if _, err := os.Stat(c.opts.IconPath); !os.IsNotExist(err) {
		t.Fatal("preview not cleaned up")
	}
}

func TestLoadPreferencesFromEnv(t *testing.T) {
	t.Setenv("TRISHADE_NOTIFY_TITLE", "Shapes")
	t.Setenv("TRISHADE_NOTIFY_SAVE_TEXT", "Wrote %s")
	t.Setenv("TRISHADE_NOTIFY_COPY_TEXT", "On the clipboard")
	prefs := LoadPreferences()
	if prefs.Title != "Shapes" || prefs.Templates[EventSave] != "Wrote %s" {
		t.Fatalf("unexpected prefs %+v", prefs)
	}
	n := New(prefs)
	got := recorder(n)
	n.Enable(EventCopy, true)
	n.Copy("scene", nil)
	if len(*got) != 1 || (*got)[0].body != "On the clipboard" {
		t.Fatalf("template without verb should be used verbatim: %+v", *got)
	}
}
