// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package binding

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/bureau-foundation/linebind/lib/convert"
	"github.com/bureau-foundation/linebind/lib/shell"
)

type calculator struct {
	results []int
}

type addParams struct {
	X       int  `arg:"x" desc:"first operand"`
	Y       int  `arg:"y" desc:"second operand"`
	Verbose bool `arg:"-verbose" desc:"print the working"`
}

type pagination struct {
	Limit int `arg:"-limit" kind:"optional" desc:"maximum rows"`
}

type listParams struct {
	pagination
	Filter  string        `arg:"-filter" kind:"required"`
	Quota   uint64        `arg:"-quota" kind:"optional" type:"bytes"`
	Timeout time.Duration `arg:"-timeout" kind:"optional"`
	Labels  []string      `arg:"-labels" kind:"optional"`
	Note    string
}

func compile(t *testing.T, controllers ...Controller) *shell.Dispatcher {
	t.Helper()
	specs, err := Describe(controllers...)
	if err != nil {
		t.Fatalf("Describe() error: %v", err)
	}
	dispatcher, err := shell.Compile(convert.NewRegistry(), specs, nil)
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}
	return dispatcher
}

func TestDescribe_MethodFillsParams(t *testing.T) {
	var got addParams
	owner := &calculator{}
	dispatcher := compile(t, Controller{
		Prefix:  "calc",
		Factory: func() (any, error) { return owner, nil },
		Handlers: []Handler{
			Method("add", "add two integers", func(c *calculator, p *addParams) error {
				got = *p
				c.results = append(c.results, p.X+p.Y)
				return nil
			}),
		},
	})

	if err := dispatcher.Accept("calc add 3 4 -verbose"); err != nil {
		t.Fatalf("Accept() error: %v", err)
	}
	if got != (addParams{X: 3, Y: 4, Verbose: true}) {
		t.Errorf("params = %+v, want {X:3 Y:4 Verbose:true}", got)
	}
	if !reflect.DeepEqual(owner.results, []int{7}) {
		t.Errorf("owner results = %v, want [7]", owner.results)
	}
}

func TestDescribe_ParamSpecs(t *testing.T) {
	specs, err := Describe(Controller{
		Handlers: []Handler{
			Func("list", "list things", func(*listParams) error { return nil }),
		},
	})
	if err != nil {
		t.Fatalf("Describe() error: %v", err)
	}
	if len(specs) != 1 {
		t.Fatalf("got %d specs, want 1", len(specs))
	}

	want := []shell.ParamSpec{
		{Name: "-limit", Kind: shell.Optional, Type: convert.Int, Description: "maximum rows"},
		{Name: "-filter", Kind: shell.Required, Type: convert.String},
		{Name: "-quota", Kind: shell.Optional, Type: convert.Bytes},
		{Name: "-timeout", Kind: shell.Optional, Type: convert.Duration},
		{Name: "-labels", Kind: shell.Optional, Type: convert.Strings},
	}
	if !reflect.DeepEqual(specs[0].Params, want) {
		t.Errorf("Params = %+v\nwant %+v", specs[0].Params, want)
	}
}

func TestDescribe_FuncFillsEmbeddedAndConvertedFields(t *testing.T) {
	var got listParams
	dispatcher := compile(t, Controller{
		Handlers: []Handler{
			Func("list", "", func(p *listParams) error {
				got = *p
				return nil
			}),
		},
	})

	if err := dispatcher.Accept("list -limit 5 -quota 2kB -filter open -labels a,b"); err != nil {
		t.Fatalf("Accept() error: %v", err)
	}
	if got.Limit != 5 || got.Quota != 2000 || got.Filter != "open" {
		t.Errorf("params = %+v, want Limit 5, Quota 2000, Filter open", got)
	}
	if !reflect.DeepEqual(got.Labels, []string{"a", "b"}) {
		t.Errorf("Labels = %v, want [a b]", got.Labels)
	}
	if got.Timeout != 0 {
		t.Errorf("absent Timeout = %v, want zero", got.Timeout)
	}
}

func TestDescribe_FactoryCalledOnce(t *testing.T) {
	calls := 0
	dispatcher := compile(t, Controller{
		Prefix: "svc",
		Factory: func() (any, error) {
			calls++
			return &calculator{}, nil
		},
		Handlers: []Handler{
			Method("a", "", func(*calculator, *struct{}) error { return nil }),
			Method("b", "", func(*calculator, *struct{}) error { return nil }),
		},
	})

	for _, line := range []string{"svc a", "svc b", "svc a"} {
		if err := dispatcher.Accept(line); err != nil {
			t.Fatalf("Accept(%q) error: %v", line, err)
		}
	}
	if calls != 1 {
		t.Errorf("factory called %d times, want 1", calls)
	}
}

func TestDescribe_FactoryFailureExcludesController(t *testing.T) {
	specs, err := Describe(
		Controller{
			Name:    "broken",
			Factory: func() (any, error) { return nil, errors.New("no database") },
			Handlers: []Handler{
				Func("x", "", func(*struct{}) error { return nil }),
			},
		},
		Controller{
			Handlers: []Handler{
				Func("y", "", func(*struct{}) error { return nil }),
			},
		},
	)
	if err == nil || !strings.Contains(err.Error(), "broken") || !strings.Contains(err.Error(), "no database") {
		t.Fatalf("Describe() error = %v, want it to name the broken controller and cause", err)
	}
	if len(specs) != 1 || specs[0].Name != "y" {
		t.Errorf("specs = %v, want only y", specs)
	}
}

func TestDescribe_InvalidParams(t *testing.T) {
	type badKind struct {
		A string `arg:"a" kind:"sometimes"`
	}
	type noConverter struct {
		A complex128 `arg:"a"`
	}
	type unexported struct {
		a string `arg:"a"`
	}

	tests := []struct {
		name    string
		handler Handler
		want    string
	}{
		{"bad kind", Func("k", "", func(*badKind) error { return nil }), "unknown argument kind"},
		{"no converter", Func("c", "", func(*noConverter) error { return nil }), "type tag"},
		{"unexported", Func("u", "", func(*unexported) error { return nil }), "exported"},
		{"not a struct", Func("s", "", func(*int) error { return nil }), "struct"},
		{"zero handler", Handler{name: "z"}, "zero Handler"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Describe(Controller{Prefix: "p", Handlers: []Handler{test.handler}})
			if err == nil || !strings.Contains(err.Error(), test.want) {
				t.Errorf("Describe() error = %v, want it to contain %q", err, test.want)
			}
		})
	}
}

func TestMethod_OwnerTypeMismatch(t *testing.T) {
	dispatcher := compile(t, Controller{
		Factory: func() (any, error) { return "not a calculator", nil },
		Handlers: []Handler{
			Method("add", "", func(*calculator, *addParams) error { return nil }),
		},
	})

	err := dispatcher.Accept("add 1 2")
	if err == nil || !strings.Contains(err.Error(), "owner is string") {
		t.Errorf("Accept() error = %v, want owner type mismatch", err)
	}
}

func TestDescribe_RejectsUnstorableTypeTag(t *testing.T) {
	type codeAsInt struct {
		Code string `arg:"code" type:"int"`
	}
	type listAsBool struct {
		On bool `arg:"-on" type:"strings"`
	}
	type floatAsInt struct {
		N int `arg:"n" type:"float64"`
	}

	tests := []struct {
		name    string
		handler Handler
	}{
		{"int into string", Func("emit", "", func(*codeAsInt) error { return nil })},
		{"strings into bool", Func("flag", "", func(*listAsBool) error { return nil })},
		{"float into int", Func("round", "", func(*floatAsInt) error { return nil })},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			specs, err := Describe(Controller{Handlers: []Handler{test.handler}})
			if err == nil || !strings.Contains(err.Error(), "cannot be stored") {
				t.Errorf("Describe() error = %v, want a storage mismatch", err)
			}
			if len(specs) != 0 {
				t.Errorf("Describe() returned %d specs, want 0", len(specs))
			}
		})
	}
}

func TestDescribe_NumericFieldsAreRangeChecked(t *testing.T) {
	type sizes struct {
		Small int8    `arg:"-small" kind:"optional" type:"bytes"`
		Count int     `arg:"-count" kind:"optional" type:"bytes"`
		Ratio float32 `arg:"-ratio" kind:"optional" type:"int"`
	}
	var got sizes
	dispatcher := compile(t, Controller{Handlers: []Handler{
		Func("size", "", func(p *sizes) error {
			got = *p
			return nil
		}),
	}})

	if err := dispatcher.Accept("size -small 100B -count 2KB -ratio 3"); err != nil {
		t.Fatalf("Accept() error: %v", err)
	}
	if got.Small != 100 || got.Count != 2000 || got.Ratio != 3 {
		t.Errorf("params = %+v, want {Small:100 Count:2000 Ratio:3}", got)
	}

	err := dispatcher.Accept("size -small 1KB")
	if err == nil || !strings.Contains(err.Error(), "overflows int8") {
		t.Errorf("Accept() error = %v, want int8 overflow", err)
	}
}

func TestDescribe_CustomTypeCheckedWhenStored(t *testing.T) {
	type percent struct {
		Label string `arg:"label" type:"percent"`
		Level uint8  `arg:"-level" kind:"optional" type:"percent"`
	}
	registry := convert.NewRegistry()
	registry.Register("percent", func(token string) (any, error) {
		return strconv.Atoi(strings.TrimSuffix(token, "%"))
	})

	var got percent
	specs, err := Describe(Controller{Handlers: []Handler{
		Func("set", "", func(p *percent) error {
			got = *p
			return nil
		}),
	}})
	if err != nil {
		t.Fatalf("Describe() error: %v", err)
	}
	dispatcher, err := shell.Compile(registry, specs, nil)
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}

	err = dispatcher.Accept("set 65%")
	if err == nil || !strings.Contains(err.Error(), "cannot store int in string") {
		t.Errorf("Accept() error = %v, want int into string rejected", err)
	}
	if got.Label != "" {
		t.Errorf("Label = %q, want it left unset", got.Label)
	}

	type levelOnly struct {
		Level uint8 `arg:"-level" kind:"optional" type:"percent"`
	}
	specs, err = Describe(Controller{Handlers: []Handler{
		Func("level", "", func(p *levelOnly) error {
			got.Level = p.Level
			return nil
		}),
	}})
	if err != nil {
		t.Fatalf("Describe() error: %v", err)
	}
	dispatcher, err = shell.Compile(registry, specs, nil)
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}
	if err := dispatcher.Accept("level -level 80%"); err != nil {
		t.Fatalf("Accept() error: %v", err)
	}
	if got.Level != 80 {
		t.Errorf("Level = %d, want 80", got.Level)
	}
	for _, input := range []string{"level -level 300%", "level -level -5%"} {
		if err := dispatcher.Accept(input); err == nil || !strings.Contains(err.Error(), "overflows uint8") {
			t.Errorf("Accept(%q) error = %v, want uint8 overflow", input, err)
		}
	}
}
