package session

import (
	"testing"
	"time"

	"github.com/pantrypal/pantrypal-go/internal/model"
)

func newTestCodec() *Codec {
	return NewCodec("test-secret", time.Hour)
}

func TestDecodeToken_User(t *testing.T) {
	codec := newTestCodec()

	raw, err := codec.EncodeUserToken(42)
	if err != nil {
		t.Fatalf("EncodeUserToken() unexpected error: %v", err)
	}

	payload, ok := codec.DecodeToken(raw)
	if !ok {
		t.Fatal("DecodeToken() ok = false, want true")
	}
	if payload.Type != "user" {
		t.Errorf("payload.Type = %q, want %q", payload.Type, "user")
	}
	if payload.UserID != 42 {
		t.Errorf("payload.UserID = %d, want 42", payload.UserID)
	}
}

func TestDecodeToken_Guest(t *testing.T) {
	codec := newTestCodec()

	raw, err := codec.EncodeGuestToken("deadbeef")
	if err != nil {
		t.Fatalf("EncodeGuestToken() unexpected error: %v", err)
	}

	payload, ok := codec.DecodeToken(raw)
	if !ok {
		t.Fatal("DecodeToken() ok = false, want true")
	}
	if payload.Type != "guest" {
		t.Errorf("payload.Type = %q, want %q", payload.Type, "guest")
	}
	if payload.SessionID != "deadbeef" {
		t.Errorf("payload.SessionID = %q, want %q", payload.SessionID, "deadbeef")
	}
}

func TestDecodeToken_Absent(t *testing.T) {
	if _, ok := newTestCodec().DecodeToken(""); ok {
		t.Error("DecodeToken(\"\") ok = true, want false")
	}
}

func TestDecodeToken_Malformed(t *testing.T) {
	if _, ok := newTestCodec().DecodeToken("{not a token}"); ok {
		t.Error("DecodeToken() with garbage: ok = true, want false")
	}
}

func TestDecodeToken_WrongSecret(t *testing.T) {
	raw, err := NewCodec("secret-one", time.Hour).EncodeUserToken(42)
	if err != nil {
		t.Fatalf("EncodeUserToken() unexpected error: %v", err)
	}

	if _, ok := NewCodec("secret-two", time.Hour).DecodeToken(raw); ok {
		t.Error("DecodeToken() with a token signed by another secret: ok = true, want false")
	}
}

func TestPantryPayloadRoundTrip(t *testing.T) {
	items := []model.PantryItem{
		{ID: 1, Ingredient: "eggs"},
		{ID: 2, Ingredient: "flour", Thumb: "https://img.example/flour.jpg"},
	}

	encoded, err := EncodePantryPayload(items)
	if err != nil {
		t.Fatalf("EncodePantryPayload() unexpected error: %v", err)
	}

	decoded := DecodePantryPayload(encoded)
	if len(decoded) != 2 {
		t.Fatalf("DecodePantryPayload() returned %d items, want 2", len(decoded))
	}
	if decoded[0].ID != 1 || decoded[0].Ingredient != "eggs" {
		t.Errorf("unexpected first item: %+v", decoded[0])
	}
	if decoded[1].Thumb != "https://img.example/flour.jpg" {
		t.Errorf("unexpected second item thumb: %q", decoded[1].Thumb)
	}
}

func TestDecodePantryPayload_Malformed(t *testing.T) {
	if items := DecodePantryPayload("%%not-base64%%"); items != nil {
		t.Errorf("DecodePantryPayload() with bad base64 = %v, want nil", items)
	}
	// Valid base64 wrapping invalid JSON.
	if items := DecodePantryPayload("bm90LWpzb24"); items != nil {
		t.Errorf("DecodePantryPayload() with bad JSON = %v, want nil", items)
	}
	if items := DecodePantryPayload(""); items != nil {
		t.Errorf("DecodePantryPayload(\"\") = %v, want nil", items)
	}
}

func TestFavoritesPayloadRoundTrip(t *testing.T) {
	items := []model.FavoriteItem{
		{RecipeID: "R1", RecipeName: "Shakshuka"},
	}

	encoded, err := EncodeFavoritesPayload(items)
	if err != nil {
		t.Fatalf("EncodeFavoritesPayload() unexpected error: %v", err)
	}

	decoded := DecodeFavoritesPayload(encoded)
	if len(decoded) != 1 {
		t.Fatalf("DecodeFavoritesPayload() returned %d items, want 1", len(decoded))
	}
	if decoded[0].RecipeID != "R1" || decoded[0].RecipeName != "Shakshuka" {
		t.Errorf("unexpected item: %+v", decoded[0])
	}
}

func TestEncodePantryPayload_NilEncodesEmptyList(t *testing.T) {
	encoded, err := EncodePantryPayload(nil)
	if err != nil {
		t.Fatalf("EncodePantryPayload(nil) unexpected error: %v", err)
	}
	if decoded := DecodePantryPayload(encoded); len(decoded) != 0 {
		t.Errorf("round-tripped nil payload has %d items, want 0", len(decoded))
	}
}
