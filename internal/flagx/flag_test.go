package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	clientFlags := []string{"-a", "-d", "-k", "-w", "-t", "-i"}

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "client flags kept, config flag dropped",
			args: []string{"-c", "client.json", "-a", "http://localhost:3001", "-t", "5s"},
			want: []string{"-a", "http://localhost:3001", "-t", "5s"},
		},
		{
			name: "equals form",
			args: []string{"-d=session.db", "-seed=users.json"},
			want: []string{"-d=session.db"},
		},
		{
			name: "value is not taken from the next flag",
			args: []string{"-k", "-w", "127.0.0.1:3000"},
			want: []string{"-k", "-w", "127.0.0.1:3000"},
		},
		{
			name: "trailing flag without value",
			args: []string{"-i"},
			want: []string{"-i"},
		},
		{
			name: "positional arguments dropped",
			args: []string{"login", "-a", "http://h", "extra"},
			want: []string{"-a", "http://h"},
		},
		{
			name: "repeats preserved in order",
			args: []string{"-t", "1s", "-t", "2s"},
			want: []string{"-t", "1s", "-t", "2s"},
		},
		{
			name: "nothing allowed present",
			args: []string{"-x", "1", "--y=2"},
			want: []string{},
		},
		{
			name: "nil args",
			args: nil,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, clientFlags))
		})
	}
}

func TestConfigPath(t *testing.T) {
	assert.Equal(t, "store.json", ConfigPath([]string{"-a", ":3001", "-config=store.json"}))
	assert.Equal(t, "b.json", ConfigPath([]string{"-c", "a.json", "-config", "b.json"}), "last wins")
	assert.Empty(t, ConfigPath([]string{"-c"}), "missing value means no file")
	assert.Empty(t, ConfigPath(nil))
}

func TestJsonConfigFlags_ReadsProcessArgs(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })

	os.Args = []string{"authdemo", "-d", "session.db", "-c", "/etc/authdemo.json"}
	assert.Equal(t, "/etc/authdemo.json", JsonConfigFlags())

	os.Args = []string{"authdemo", "-d", "session.db"}
	assert.Empty(t, JsonConfigFlags())
}
