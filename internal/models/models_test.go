package models

import "testing"

func TestParseRole(t *testing.T) {
	for _, value := range []string{"STUDENT", "TEACHER", "DIRECTOR", "ADMIN", "SUPER_ADMIN"} {
		role, ok := ParseRole(value)
		if !ok {
			t.Fatalf("ParseRole(%q) rejected a valid role", value)
		}
		if string(role) != value {
			t.Fatalf("ParseRole(%q) = %q", value, role)
		}
	}

	for _, value := range []string{"", "student", "MANAGER", "SUPERADMIN"} {
		if _, ok := ParseRole(value); ok {
			t.Fatalf("ParseRole(%q) accepted an invalid role", value)
		}
	}
}

func TestRoleHierarchy(t *testing.T) {
	ordered := []Role{RoleStudent, RoleTeacher, RoleDirector, RoleAdmin, RoleSuperAdmin}
	for i, lower := range ordered {
		if !lower.AtLeast(lower) {
			t.Fatalf("%s.AtLeast(%s) = false", lower, lower)
		}
		for _, higher := range ordered[i+1:] {
			if !higher.AtLeast(lower) {
				t.Fatalf("%s.AtLeast(%s) = false", higher, lower)
			}
			if lower.AtLeast(higher) {
				t.Fatalf("%s.AtLeast(%s) = true", lower, higher)
			}
		}
	}

	if Role("UNKNOWN").AtLeast(RoleStudent) {
		t.Fatal("unknown role outranks STUDENT")
	}
}

func TestParseMessageKind(t *testing.T) {
	if _, ok := ParseMessageKind("SMS"); !ok {
		t.Fatal("SMS rejected")
	}
	if _, ok := ParseMessageKind("KAKAO"); !ok {
		t.Fatal("KAKAO rejected")
	}
	if _, ok := ParseMessageKind("EMAIL"); ok {
		t.Fatal("EMAIL accepted")
	}
}

func TestParseInquiryStatus(t *testing.T) {
	for _, value := range []string{"PENDING", "IN_PROGRESS", "RESOLVED"} {
		if _, ok := ParseInquiryStatus(value); !ok {
			t.Fatalf("ParseInquiryStatus(%q) rejected a valid status", value)
		}
	}
	if _, ok := ParseInquiryStatus("CLOSED"); ok {
		t.Fatal("CLOSED accepted")
	}
}
