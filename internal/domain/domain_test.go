package domain

import "testing"

func TestRoleLevelOrdering(t *testing.T) {
	if !(RoleView.Level() < RoleEdit.Level() && RoleEdit.Level() < RoleAdmin.Level()) {
		t.Fatal("role levels must order view < edit < admin")
	}
	if Role("owner").Level() != 0 {
		t.Fatal("unknown role must rank 0")
	}
	if Role("owner").Valid() {
		t.Fatal("unknown role must not be valid")
	}
}

func TestPriorityValid(t *testing.T) {
	for _, p := range []Priority{PriorityUrgent, PriorityImportant, PriorityMedium, PriorityLow} {
		if !p.Valid() {
			t.Errorf("%q should be valid", p)
		}
	}
	for _, p := range []Priority{"", "X", "urgent", "m"} {
		if p.Valid() {
			t.Errorf("%q should be invalid", p)
		}
	}
}

func TestCategoryValid(t *testing.T) {
	for _, c := range []Category{CategoryBacklog, CategoryInProgress, CategoryStandby,
		CategoryDeveloped, CategoryTesting, CategoryDone} {
		if !c.Valid() {
			t.Errorf("%q should be valid", c)
		}
	}
	if Category("archived").Valid() || Category("").Valid() {
		t.Fatal("unknown categories should be invalid")
	}
}

func TestValidHexColor(t *testing.T) {
	valid := []string{"#000000", "#FFFFFF", "#a1B2c3"}
	for _, s := range valid {
		if !ValidHexColor(s) {
			t.Errorf("%q should be valid", s)
		}
	}
	invalid := []string{"", "000000", "#FFF", "#GGGGGG", "#1234567", "red"}
	for _, s := range invalid {
		if ValidHexColor(s) {
			t.Errorf("%q should be invalid", s)
		}
	}
}

func TestAllowedAttachmentExt(t *testing.T) {
	allowed := []string{"scan.pdf", "photo.jpg", "shot.PNG", "a.b.JPG"}
	for _, name := range allowed {
		if !AllowedAttachmentExt(name) {
			t.Errorf("%q should be allowed", name)
		}
	}
	denied := []string{"run.exe", "note.txt", "archive.zip", "noext", "trick.pdf.sh"}
	for _, name := range denied {
		if AllowedAttachmentExt(name) {
			t.Errorf("%q should be denied", name)
		}
	}
}
