package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runMenuScript feeds the lines to the menu loop and returns its output.
func runMenuScript(t *testing.T, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	require.NoError(t, runMenu(in, &out))
	return out.String()
}

func TestMenu_QuitSentinel(t *testing.T) {
	out := runMenuScript(t, "q")
	assert.Contains(t, out, "=== primer menu ===")
	assert.Contains(t, out, "Goodbye!")
}

func TestMenu_QuitAliases(t *testing.T) {
	for _, sentinel := range []string{"quit", "exit", "Q"} {
		out := runMenuScript(t, sentinel)
		assert.Contains(t, out, "Goodbye!", "sentinel=%q", sentinel)
	}
}

func TestMenu_EOFExitsCleanly(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runMenu(strings.NewReader(""), &out))
	assert.Contains(t, out.String(), "=== primer menu ===")
}

func TestMenu_Greeting(t *testing.T) {
	out := runMenuScript(t, "1", "Alice", "q")
	assert.Contains(t, out, "Hello, Alice!")
	assert.Contains(t, out, "Goodbye!")
}

func TestMenu_Greeting_EmptyName(t *testing.T) {
	out := runMenuScript(t, "1", "", "q")
	assert.Contains(t, out, "Hello, stranger!")
}

func TestMenu_Arithmetic(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		op   string
		want string
	}{
		{"addition", "2", "3", "+", "Result: 2 + 3 = 5"},
		{"subtraction", "10", "4", "-", "Result: 10 - 4 = 6"},
		{"multiplication", "6", "7", "*", "Result: 6 * 7 = 42"},
		{"division", "9", "2", "/", "Result: 9 / 2 = 4.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := runMenuScript(t, "2", tt.a, tt.b, tt.op, "q")
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestMenu_Arithmetic_DivisionByZero(t *testing.T) {
	out := runMenuScript(t, "2", "5", "0", "/", "q")
	assert.Contains(t, out, "cannot divide by zero")
	// The loop survives the error.
	assert.Contains(t, out, "Goodbye!")
}

func TestMenu_Arithmetic_UnknownOperation(t *testing.T) {
	out := runMenuScript(t, "2", "5", "3", "%", "q")
	assert.Contains(t, out, `unknown operation "%"`)
	assert.Contains(t, out, "Goodbye!")
}

func TestMenu_Arithmetic_RepromptsOnBadNumber(t *testing.T) {
	out := runMenuScript(t, "2", "abc", "5", "3", "+", "q")
	assert.Contains(t, out, `"abc" is not a number`)
	assert.Contains(t, out, "Result: 5 + 3 = 8")
}

func TestMenu_Transforms(t *testing.T) {
	out := runMenuScript(t, "3", "Hello World", "q")
	assert.Contains(t, out, "Upper:    HELLO WORLD")
	assert.Contains(t, out, "Lower:    hello world")
	assert.Contains(t, out, "Reversed: dlroW olleH")
}

func TestMenu_InvalidOptionReprompts(t *testing.T) {
	out := runMenuScript(t, "9", "banana", "q")
	assert.Contains(t, out, `Invalid option "9"`)
	assert.Contains(t, out, `Invalid option "banana"`)
	assert.Contains(t, out, "Goodbye!")
}

func TestReverseString_Unicode(t *testing.T) {
	assert.Equal(t, "ñandú", reverseString("údnañ"))
	assert.Equal(t, "", reverseString(""))
}
