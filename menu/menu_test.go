package menu

import "testing"

func actionIDs(sections []Section) map[ActionID]int {
	ids := make(map[ActionID]int)
	for _, s := range sections {
		for _, it := range s.Items {
			if it.ID != "" {
				ids[it.ID]++
			}
		}
	}
	return ids
}

func TestBuildDarwinHasPlatformSections(t *testing.T) {
	sections := Build("darwin")

	if sections[0].Role != RoleAppMenu {
		t.Errorf("expected application submenu first on darwin, got %+v", sections[0])
	}
	last := sections[len(sections)-1]
	if last.Role != RoleWindow {
		t.Errorf("expected role window submenu last on darwin, got %+v", last)
	}
}

func TestBuildOtherPlatformsOmitRoleSubmenus(t *testing.T) {
	for _, platform := range []string{"linux", "windows"} {
		for _, s := range Build(platform) {
			if s.Role == RoleAppMenu || s.Role == RoleWindow {
				t.Errorf("%s: unexpected %q role submenu", platform, s.Role)
			}
		}
	}
}

func TestBuildEveryActionAppearsExactlyOnce(t *testing.T) {
	all := []ActionID{
		ActionNewChat, ActionReload, ActionCopyURL, ActionOpenInBrowser,
		ActionExportPDF, ActionExportText, ActionScreenshot, ActionResetSize,
		ActionZoomIn, ActionZoomOut, ActionZoomReset,
		ActionToggleOnTop, ActionToggleFullscreen, ActionOpenNotes,
	}

	for _, platform := range []string{"darwin", "linux", "windows"} {
		ids := actionIDs(Build(platform))
		for _, id := range all {
			if ids[id] != 1 {
				t.Errorf("%s: action %q appears %d times, want 1", platform, id, ids[id])
			}
		}
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	a := Build("darwin")
	b := Build("darwin")
	if len(a) != len(b) {
		t.Fatalf("section counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Title != b[i].Title || a[i].Role != b[i].Role || len(a[i].Items) != len(b[i].Items) {
			t.Errorf("section %d differs between builds", i)
		}
	}
}
