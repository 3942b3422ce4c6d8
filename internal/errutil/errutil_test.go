package errutil

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errTest = errors.New("test error")

func TestScope_nested(t *testing.T) {
	err := Scope(Scope(NewPos(errTest, 3, 7), "weights", "2"), "database")
	assert.ErrorIs(t, err, errTest)
	assert.Equal(t, "database.weights.2", AsScope(err))
	line, col := AsPos(err)
	assert.Equal(t, 3, line)
	assert.Equal(t, 7, col)
	assert.Equal(t, "test error", err.Error())
}

func TestScope_nil(t *testing.T) {
	assert.NoError(t, Scope(nil, "a"))
	assert.NoError(t, NewPos(nil, 1, 1))
}

func TestDescribe(t *testing.T) {
	var tests = []struct {
		name string
		err  error
		want string
	}{
		{name: "plain", err: errTest, want: "test error"},
		{name: "scoped", err: Scope(errTest, "a"), want: "a: test error"},
		{name: "positioned", err: NewPos(errTest, 1, 2), want: "1:2: test error"},
		{name: "both", err: Scope(NewPos(errTest, 1, 2), "a", "b"), want: "a.b (1:2): test error"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Describe(tc.err))
		})
	}
}

func TestSortByPos(t *testing.T) {
	errs := Slice{
		NewPos(errTest, 5, 1),
		errTest,
		NewPos(errTest, 2, 9),
		NewPos(errTest, 2, 3),
	}
	SortByPos(errs)
	var got [][2]int
	for _, err := range errs {
		line, col := AsPos(err)
		got = append(got, [2]int{line, col})
	}
	assert.Equal(t, [][2]int{{0, 0}, {2, 3}, {2, 9}, {5, 1}}, got)
}

func TestSlice_Add(t *testing.T) {
	var errs Slice
	errs.Add(nil, errTest, nil)
	assert.Len(t, errs, 1)
}
