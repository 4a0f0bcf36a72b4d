package locale

import "testing"

func TestGet(t *testing.T) {
	cases := []struct {
		key  string
		args []interface{}
		want string
	}{
		{"GATE_LOCKED", []interface{}{2, 7, 6}, "Gate still locked: level 2 needs 7 kills (6 so far)."},
		{"TREASURE_LUCK", []interface{}{"12"}, "Treasure: luck +12%."},
		{"NOT_AVAILABLE", nil, "That square is not open yet."},
		{"NO_SUCH_KEY", nil, "NO_SUCH_KEY"},
	}
	for _, tc := range cases {
		if got := Get(tc.key, tc.args...); got != tc.want {
			t.Errorf("Get(%s) = %q, want %q", tc.key, got, tc.want)
		}
	}
}

func TestUse(t *testing.T) {
	defer Use(english)
	Use([]byte("msgid \"TITLE\"\nmsgstr \"CARRÉS\"\n"))
	if got := Get("TITLE"); got != "CARRÉS" {
		t.Errorf("Get(TITLE) = %q after Use", got)
	}
}
