package pathutil

import "testing"

func TestPathBuilder_Basic(t *testing.T) {
	p := &PathBuilder{}
	p.Push("customer")
	p.Push("name")

	got := p.String()
	want := "customer.name"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestPathBuilder_WithIndex(t *testing.T) {
	p := &PathBuilder{}
	p.Push("orders")
	p.PushIndex(0)
	p.Push("id")

	got := p.String()
	want := "orders.[0].id"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestPathBuilder_NestedIndex(t *testing.T) {
	p := &PathBuilder{}
	p.Push("matrix")
	p.PushIndex(1)
	p.PushIndex(2)

	got := p.String()
	want := "matrix.[1].[2]"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestPathBuilder_PushPop(t *testing.T) {
	p := &PathBuilder{}
	p.Push("a")
	p.Push("b")
	p.Pop()
	p.Push("c")

	got := p.String()
	want := "a.c"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if p.Len() != 2 {
		t.Errorf("Len() = %d, want 2", p.Len())
	}
	if p.Last() != "c" {
		t.Errorf("Last() = %q, want %q", p.Last(), "c")
	}
}

func TestPathBuilder_Empty(t *testing.T) {
	p := &PathBuilder{}
	if got := p.String(); got != "" {
		t.Errorf("String() on empty = %q, want empty", got)
	}
	if got := p.Last(); got != "" {
		t.Errorf("Last() on empty = %q, want empty", got)
	}
}

func TestPathBuilder_PopEmpty(t *testing.T) {
	p := &PathBuilder{}
	p.Pop() // Should not panic
	if got := p.String(); got != "" {
		t.Errorf("String() after Pop on empty = %q, want empty", got)
	}
}

func TestPathBuilder_Reset(t *testing.T) {
	p := &PathBuilder{}
	p.Push("a")
	p.Push("b")
	p.Reset()

	if got := p.String(); got != "" {
		t.Errorf("String() after Reset = %q, want empty", got)
	}

	p.Push("c")
	if got := p.String(); got != "c" {
		t.Errorf("String() after Reset+Push = %q, want %q", got, "c")
	}
}

func TestPool_GetPut(t *testing.T) {
	p := Get()
	if p == nil {
		t.Fatal("Get() returned nil")
	}

	p.Push("test")
	Put(p)

	p2 := Get()
	if p2 == nil {
		t.Fatal("Get() returned nil after Put")
	}
	if p2.String() != "" {
		t.Errorf("Get() returned non-empty PathBuilder: %q", p2.String())
	}
	Put(p2)
	Put(nil) // Should not panic
}

func TestJoin(t *testing.T) {
	tests := []struct {
		prefix, segment, want string
	}{
		{"", "name", "name"},
		{"customer", "name", "customer.name"},
		{"orders", IndexSegment(3), "orders.[3]"},
	}
	for _, tt := range tests {
		if got := Join(tt.prefix, tt.segment); got != tt.want {
			t.Errorf("Join(%q, %q) = %q, want %q", tt.prefix, tt.segment, got, tt.want)
		}
	}
}
