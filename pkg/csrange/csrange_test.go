package csrange_test

import (
	"bytes"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/251207-go-pkg-csrange/pkg/csrange"
)

func TestExpand(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "numeric range and singleton",
			input: "1-3,5",
			want:  []string{"1", "2", "3", "5"},
		},
		{
			name:  "whitespace anywhere",
			input: " 1 - 3 ,\t5\n",
			want:  []string{"1", "2", "3", "5"},
		},
		{
			name:  "single element range",
			input: "7-7",
			want:  []string{"7"},
		},
		{
			name:  "canonical singleton unchanged",
			input: "Vlan10",
			want:  []string{"Vlan10"},
		},
		{
			name:  "lowercase singleton resolved",
			input: "vlan10",
			want:  []string{"Vlan10"},
		},
		{
			name:  "abbreviated singleton resolved",
			input: "Gi1/1",
			want:  []string{"GigabitEthernet1/1"},
		},
		{
			name:  "both sides abbreviated",
			input: "Gi1/1-Gi1/3",
			want:  []string{"GigabitEthernet1/1", "GigabitEthernet1/2", "GigabitEthernet1/3"},
		},
		{
			name:  "right context omitted",
			input: "Te3/12-14",
			want:  []string{"TenGigabitEthernet3/12", "TenGigabitEthernet3/13", "TenGigabitEthernet3/14"},
		},
		{
			name:  "multiple tokens keep order",
			input: "Te3/12-14,Gi1/1-2",
			want: []string{
				"TenGigabitEthernet3/12", "TenGigabitEthernet3/13", "TenGigabitEthernet3/14",
				"GigabitEthernet1/1", "GigabitEthernet1/2",
			},
		},
		{
			name:  "ambiguous abbreviation kept",
			input: "F3/1-F3/2",
			want:  []string{"F3/1", "F3/2"},
		},
		{
			name:  "unknown context kept",
			input: "xe-0/0/1-2",
			want:  []string{"xe-0/0/1", "xe-0/0/2"},
		},
		{
			name:  "hyphen inside context",
			input: "Port-channel5-7",
			want:  []string{"Port-channel5", "Port-channel6", "Port-channel7"},
		},
		{
			name:  "hyphenated context against abbreviation",
			input: "Port-channel5-Po6",
			want:  []string{"Port-channel5", "Port-channel6"},
		},
		{
			name:  "hyphen before digits stays in tail",
			input: "Gi-1/1-2",
			want:  []string{"GigabitEthernet-1/1", "GigabitEthernet-1/2"},
		},
		{
			name:  "case differs but resolves to same type",
			input: "gi1/1-Gi1/2",
			want:  []string{"GigabitEthernet1/1", "GigabitEthernet1/2"},
		},
		{
			name:  "empty tokens dropped",
			input: ",,1,,2,",
			want:  []string{"1", "2"},
		},
		{
			name:  "empty input",
			input: "",
			want:  []string{},
		},
		{
			name:  "blank input",
			input: "  \t , ",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := csrange.Expand(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpand_Errors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		target error
		errMsg string
	}{
		{
			name:   "context mismatch",
			input:  "Gi1/1-Te1/5",
			target: csrange.ErrContextMismatch,
			errMsg: `left hand side context "Gi1/" is different from right hand side context "Te1/"`,
		},
		{
			name:   "descending range",
			input:  "10-5",
			target: csrange.ErrRangeOrder,
			errMsg: "range from 10 to 5 is not obvious",
		},
		{
			name:   "missing right bound",
			input:  "1-",
			target: csrange.ErrParse,
			errMsg: `"1-" cannot be parsed`,
		},
		{
			name:   "non numeric bounds",
			input:  "abc-def",
			target: csrange.ErrParse,
			errMsg: `"abc-def" cannot be parsed`,
		},
		{
			name:   "error after valid tokens",
			input:  "1-3, Gi1/1-x",
			target: csrange.ErrParse,
			errMsg: "Gi1/1-x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := csrange.Expand(tt.input)
			require.Error(t, err)
			assert.Nil(t, got, "no partial result on error")
			assert.ErrorIs(t, err, tt.target)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestExpand_ErrorDetails(t *testing.T) {
	_, err := csrange.Expand("Gi1/1-Te1/5")
	var mismatch *csrange.ContextMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "Gi1/1-Te1/5", mismatch.Token)
	assert.Equal(t, "Gi1/", mismatch.Left)
	assert.Equal(t, "Te1/", mismatch.Right)

	_, err = csrange.Expand("Vlan 20 - 10")
	var order *csrange.RangeOrderError
	require.ErrorAs(t, err, &order)
	assert.Equal(t, "Vlan20-10", order.Token)
	assert.Equal(t, 20, order.From)
	assert.Equal(t, 10, order.To)

	_, err = csrange.Expand("1-99999999999999999999")
	var parse *csrange.ParseError
	require.ErrorAs(t, err, &parse)
	assert.Equal(t, "1-99999999999999999999", parse.Token)
	assert.ErrorIs(t, err, strconv.ErrRange)
	assert.ErrorIs(t, err, csrange.ErrParse)
}

func TestExpand_RangeSize(t *testing.T) {
	got, err := csrange.Expand("Lo0-99")
	require.NoError(t, err)
	require.Len(t, got, 100)
	for i, item := range got {
		assert.Equal(t, fmt.Sprintf("Loopback%d", i), item)
	}
}

func TestExpander_WithoutResolve(t *testing.T) {
	e := csrange.New(csrange.WithResolve(false))

	got, err := e.Expand("Gi1/1-Gi1/2, vlan10")
	require.NoError(t, err)
	assert.Equal(t, []string{"Gi1/1", "Gi1/2", "vlan10"}, got)

	_, err = e.Expand("gi1/1-Gi1/2")
	assert.ErrorIs(t, err, csrange.ErrContextMismatch)
}

func TestExpander_WithLimit(t *testing.T) {
	e := csrange.New(csrange.WithLimit(3))

	got, err := e.Expand("1-3")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, got)

	_, err = e.Expand("1-4")
	var limitErr *csrange.LimitError
	require.ErrorAs(t, err, &limitErr)
	assert.Equal(t, "1-4", limitErr.Token)
	assert.Equal(t, 3, limitErr.Limit)

	_, err = e.Expand("1-2,5,6")
	require.ErrorAs(t, err, &limitErr)
	assert.Equal(t, "6", limitErr.Token)

	got, err = csrange.New(csrange.WithLimit(-1)).Expand("1-10")
	require.NoError(t, err, "negative limit falls back to MaxItems")
	assert.Len(t, got, 10)

	_, err = csrange.New(csrange.WithLimit(csrange.MaxItems * 2)).Expand(fmt.Sprintf("0-%d", csrange.MaxItems))
	require.ErrorAs(t, err, &limitErr)
	assert.Equal(t, csrange.MaxItems, limitErr.Limit, "limit is capped at MaxItems")
}

func TestExpand_HugeRanges(t *testing.T) {
	tests := []string{
		"0-9223372036854775807",
		"1-9223372036854775807",
		"1-10000000000",
		fmt.Sprintf("0-%d", csrange.MaxItems),
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			var got []string
			var err error
			require.NotPanics(t, func() { got, err = csrange.Expand(input) })

			var limitErr *csrange.LimitError
			require.ErrorAs(t, err, &limitErr)
			assert.Equal(t, input, limitErr.Token)
			assert.Equal(t, csrange.MaxItems, limitErr.Limit)
			assert.Nil(t, got)
		})
	}
}

func TestExpand_MaxIntBound(t *testing.T) {
	got, err := csrange.Expand("9223372036854775806-9223372036854775807")
	require.NoError(t, err)
	assert.Equal(t, []string{"9223372036854775806", "9223372036854775807"}, got)
}

func TestExpander_WithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	e := csrange.New(csrange.WithLogger(logger))

	_, err := e.Expand("1-3")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `msg="Token expanded"`)
	assert.Contains(t, buf.String(), "token=1-3")
	assert.Contains(t, buf.String(), "items=3")

	buf.Reset()
	_, err = e.Expand("10-5")
	require.Error(t, err)
	assert.Contains(t, buf.String(), `msg="Token rejected"`)
	assert.Contains(t, buf.String(), "token=10-5")
	assert.NotContains(t, buf.String(), "Token expanded")
}

func TestExpander_WithInterfaceTypes(t *testing.T) {
	e := csrange.New(csrange.WithInterfaceTypes("Management", " ", "Vlan"))

	got, err := e.Expand("ma0-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Management0", "Management1"}, got)

	types := e.InterfaceTypes()
	assert.Len(t, types, len(csrange.KnownInterfaceTypes())+1)
	assert.Contains(t, types, "Management")

	// 追加的类型让 "Gi" 产生歧义，但完整写法仍然命中
	e = csrange.New(csrange.WithInterfaceTypes("GigabitEthernetX"))
	got, err = e.Expand("Gi1/1,gigabitethernet1/2")
	require.NoError(t, err)
	assert.Equal(t, []string{"Gi1/1", "GigabitEthernet1/2"}, got)
}

func TestExpand_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			input := fmt.Sprintf("Gi%d/1-4", i)
			got, err := csrange.Expand(input)
			assert.NoError(t, err)
			assert.Len(t, got, 4)
			assert.Equal(t, fmt.Sprintf("GigabitEthernet%d/4", i), got[3])
		}()
	}
	wg.Wait()
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"Fo1/4-14", "Te3/12"}, csrange.Tokenize(" Fo1/4 - 14 ,, Te3/12 ,"))
	assert.Empty(t, csrange.Tokenize(" \n "))
}

func TestResolveInterface(t *testing.T) {
	tests := map[string]string{
		"":        "",
		"5/":      "5/",
		"Gi5/":    "GigabitEthernet5/",
		"gig":     "GigabitEthernet",
		"Fa0/":    "FastEthernet0/",
		"Fo1/":    "FortyGigabitEthernet1/",
		"F3/":     "F3/",
		"T1":      "T1",
		"Tu1":     "Tunnel1",
		"tw1/0/":  "TwentyfiveGigabitEthernet1/0/",
		"Hu0/0/":  "HundredGigabitEthernet0/0/",
		"E1/":     "Ethernet1/",
		"lo":      "Loopback",
		"po":      "Port-channel",
		"Port-":   "Port-channel-",
		"Gi-1/":   "GigabitEthernet-1/",
		"port-ch": "Port-channel",
		"xe-0/0/": "xe-0/0/",
		"Vlan":    "Vlan",
	}

	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, csrange.ResolveInterface(in))
		})
	}
}

func TestKnownInterfaceTypes_ReturnsCopy(t *testing.T) {
	types := csrange.KnownInterfaceTypes()
	types[0] = "Mutated"

	assert.Equal(t, "Ethernet", csrange.KnownInterfaceTypes()[0])
}
