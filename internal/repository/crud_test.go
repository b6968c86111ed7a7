package repository

import "testing"

func TestListSQL(t *testing.T) {
	got := listSQL("rates", []string{"id", "name", "price"}, "id")
	want := "SELECT id, name, price FROM rates ORDER BY id"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	got = listSQL("rates", []string{"id"}, "")
	want = "SELECT id FROM rates"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestGetSQL(t *testing.T) {
	got := getSQL("vehicles", []string{"id", "plate"}, "id")
	want := "SELECT id, plate FROM vehicles WHERE id = $1"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestInsertSQL(t *testing.T) {
	got := insertSQL("vehicles", []string{"plate", "vehicle_type", "driver_name"}, "id")
	want := "INSERT INTO vehicles (plate, vehicle_type, driver_name) VALUES ($1, $2, $3) RETURNING id"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestUpdateSQL(t *testing.T) {
	got := updateSQL("tasks", []string{"description", "status"}, "id")
	want := "UPDATE tasks SET description = $1, status = $2 WHERE id = $3"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDeleteSQL(t *testing.T) {
	got := deleteSQL("tasks", "id")
	want := "DELETE FROM tasks WHERE id = $1"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
