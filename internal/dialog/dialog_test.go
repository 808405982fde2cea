package dialog

import "testing"

func TestAppendKeepsOrder(t *testing.T) {
	l := NewLog()
	l.Append(RoleUser, "打开空调")
	l.Append(RoleAssistant, "空调已打开，温度24度，风速3档")

	msgs := l.Messages()
	if len(msgs) != 2 {
		t.Fatalf("len = %d, want 2", len(msgs))
	}
	if msgs[0].Role != RoleUser || msgs[1].Role != RoleAssistant {
		t.Errorf("roles out of order: %s, %s", msgs[0].Role, msgs[1].Role)
	}
	if msgs[0].ID == msgs[1].ID || msgs[0].ID == "" {
		t.Error("messages need distinct non-empty ids")
	}
	if msgs[1].At.Before(msgs[0].At) {
		t.Error("timestamps must not go backwards")
	}
}

func TestMessagesReturnsCopy(t *testing.T) {
	l := NewLog()
	l.Append(RoleUser, "播放音乐")

	snap := l.Messages()
	snap[0].Text = "mutated"
	if l.Messages()[0].Text != "播放音乐" {
		t.Error("snapshot mutation leaked into the log")
	}
}

func TestClear(t *testing.T) {
	l := NewLog()
	l.Append(RoleUser, "a")
	l.Append(RoleAssistant, "b")

	l.Clear()
	if l.Len() != 0 {
		t.Errorf("len after clear = %d", l.Len())
	}
}
