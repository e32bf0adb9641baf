package redisad_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"

	redisad "daoxanh/internal/adapters/redis"
)

func TestCache_RoundTripAndDelete(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := redisad.New(mr.Addr(), "", 0)
	ctx := context.Background()

	type view struct {
		Slug  string
		Total int64
	}

	ok, err := cache.Get(ctx, "posts:front", &view{})
	if err != nil || ok {
		t.Fatalf("expected clean miss, got ok=%v err=%v", ok, err)
	}

	want := view{Slug: "mua-he-o-dao-xanh", Total: 700000}
	if err := cache.Set(ctx, "posts:front", want, 60); err != nil {
		t.Fatalf("set: %v", err)
	}

	var got view
	ok, err = cache.Get(ctx, "posts:front", &got)
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}

	if err := cache.Del(ctx, "posts:front"); err != nil {
		t.Fatalf("del: %v", err)
	}
	ok, _ = cache.Get(ctx, "posts:front", &got)
	if ok {
		t.Fatalf("expected miss after delete")
	}
}
