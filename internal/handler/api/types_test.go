package api

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"
)

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{`"2023-04-01"`, time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC), false},
		{`"2023-04-01T10:00:00+02:00"`, time.Date(2023, 4, 1, 8, 0, 0, 0, time.UTC), false},
		{`""`, time.Time{}, false},
		{`"01/04/2023"`, time.Time{}, true},
		{`12`, time.Time{}, true},
	}
	for _, tt := range tests {
		var d Date
		err := json.Unmarshal([]byte(tt.in), &d)
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && !d.Time.Equal(tt.want) {
			t.Errorf("%s: got %v, want %v", tt.in, d.Time, tt.want)
		}
	}
}

func TestIDList_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in      string
		want    IDList
		wantErr bool
	}{
		{`["a","b"]`, IDList{"a", "b"}, false},
		{`"a"`, IDList{"a"}, false},
		{`[]`, IDList{}, false},
		{`""`, IDList{}, false},
		{`42`, nil, true},
	}
	for _, tt := range tests {
		var l IDList
		err := json.Unmarshal([]byte(tt.in), &l)
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && !reflect.DeepEqual(l, tt.want) {
			t.Errorf("%s: got %#v, want %#v", tt.in, l, tt.want)
		}
	}
}

func TestFirstIDs(t *testing.T) {
	a := IDList{"a"}
	empty := IDList{}
	if got := firstIDs(nil, nil); got != nil {
		t.Errorf("nothing submitted: got %v, want nil", got)
	}
	if got := firstIDs(nil, &a); !reflect.DeepEqual(got, []string{"a"}) {
		t.Errorf("second list: got %v", got)
	}
	if got := firstIDs(&empty, &a); got == nil || len(got) != 0 {
		t.Errorf("empty first list must win and stay non-nil, got %#v", got)
	}
}
