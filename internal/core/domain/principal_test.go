package domain

import "testing"

func TestDecide_Public(t *testing.T) {
	if !Decide(nil, RoutePublic) {
		t.Fatalf("anonymous caller must reach public routes")
	}
	if !Decide(&Principal{Username: "alice", Role: RoleUser}, RoutePublic) {
		t.Fatalf("authenticated caller must reach public routes")
	}
}

func TestDecide_Authenticated(t *testing.T) {
	if Decide(nil, RouteAuthenticated) {
		t.Fatalf("anonymous caller must not reach authenticated routes")
	}
	if !Decide(&Principal{Username: "alice", Role: RoleUser}, RouteAuthenticated) {
		t.Fatalf("USER must reach authenticated routes")
	}
	if !Decide(&Principal{Username: "root", Role: RoleAdmin}, RouteAuthenticated) {
		t.Fatalf("ADMIN must reach authenticated routes")
	}
}

func TestDecide_AdminOnly(t *testing.T) {
	if Decide(nil, RouteAdminOnly) {
		t.Fatalf("anonymous caller must not reach admin routes")
	}
	if Decide(&Principal{Username: "alice", Role: RoleUser}, RouteAdminOnly) {
		t.Fatalf("USER must not reach admin routes")
	}
	if !Decide(&Principal{Username: "root", Role: RoleAdmin}, RouteAdminOnly) {
		t.Fatalf("ADMIN must reach admin routes")
	}
}

func TestDecide_UnknownClass(t *testing.T) {
	if Decide(&Principal{Username: "root", Role: RoleAdmin}, RouteClass("bogus")) {
		t.Fatalf("unknown route class must deny")
	}
}
