package notification_test

import (
	"testing"

	"github.com/tailored-agentic-units/puremvc/core/notification"
)

func TestNew(t *testing.T) {
	body := []int{5, 7}
	n := notification.New("TestNote", body, "TestType")

	if n.Name != "TestNote" {
		t.Errorf("Name = %q, want %q", n.Name, "TestNote")
	}
	if n.Type != "TestType" {
		t.Errorf("Type = %q, want %q", n.Type, "TestType")
	}
	if got := n.Body.([]int); len(got) != 2 || got[0] != 5 || got[1] != 7 {
		t.Errorf("Body = %v, want %v", n.Body, body)
	}
}

func TestNotification_String(t *testing.T) {
	tests := []struct {
		name string
		note *notification.Notification
		want string
	}{
		{
			name: "full",
			note: notification.New("TestNote", []int{1, 3, 5}, "TestType"),
			want: "Notification{Name: TestNote, Body: [1 3 5], Type: TestType}",
		},
		{
			name: "name only",
			note: notification.New("TestNote", nil, ""),
			want: "Notification{Name: TestNote, Body: nil, Type: nil}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.note.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
