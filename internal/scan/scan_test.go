package scan

import "testing"

func TestEmail(t *testing.T) {
	for _, s := range []string{"a@b.co", "user.name+tag@example.com", "x_y@sub.domain.org"} {
		if !Email(s) {
			t.Fatalf("expected valid email: %q", s)
		}
	}
	for _, s := range []string{"", "@b.co", "a@", "a b@c.com", "a@-bad.com", "plain"} {
		if Email(s) {
			t.Fatalf("expected invalid email: %q", s)
		}
	}
}

func TestUUID(t *testing.T) {
	if !UUID("550e8400-e29b-41d4-a716-446655440000") {
		t.Fatalf("canonical uuid rejected")
	}
	for _, s := range []string{"550e8400e29b41d4a716446655440000", "550e8400-e29b-41d4-a716-44665544000g", "short"} {
		if UUID(s) {
			t.Fatalf("expected invalid uuid: %q", s)
		}
	}
}

func TestURL(t *testing.T) {
	if !URL("https://example.com/path?q=1") || !URL("http://x") {
		t.Fatalf("expected valid urls")
	}
	for _, s := range []string{"ftp://example.com", "https://", "https://has space.com", "example.com"} {
		if URL(s) {
			t.Fatalf("expected invalid url: %q", s)
		}
	}
}

func TestIPv4(t *testing.T) {
	for _, s := range []string{"0.0.0.0", "255.255.255.255", "192.168.1.1"} {
		if !IPv4(s) {
			t.Fatalf("expected valid ipv4: %q", s)
		}
	}
	for _, s := range []string{"256.1.1.1", "01.2.3.4", "1.2.3", "1.2.3.4.5", "a.b.c.d"} {
		if IPv4(s) {
			t.Fatalf("expected invalid ipv4: %q", s)
		}
	}
}

func TestIPv6(t *testing.T) {
	for _, s := range []string{"::", "::1", "2001:db8::8a2e:370:7334", "2001:0db8:85a3:0000:0000:8a2e:0370:7334"} {
		if !IPv6(s) {
			t.Fatalf("expected valid ipv6: %q", s)
		}
	}
	for _, s := range []string{"", "1:2:3:4:5:6:7", "2001:db8::8a2e::7334 extra", "gggg::1"} {
		if IPv6(s) {
			t.Fatalf("expected invalid ipv6: %q", s)
		}
	}
}

func TestBase64(t *testing.T) {
	for _, s := range []string{"aGVsbG8=", "YWJjZA==", "QUJDRA=="} {
		if !Base64(s) {
			t.Fatalf("expected valid base64: %q", s)
		}
	}
	for _, s := range []string{"", "abc", "aGVsbG8==x", "a===", "!!!!"} {
		if Base64(s) {
			t.Fatalf("expected invalid base64: %q", s)
		}
	}
}

func TestISODateTimeFamily(t *testing.T) {
	if !ISODate("2024-02-29") || ISODate("2024-13-01") || ISODate("2024-1-1") {
		t.Fatalf("iso date checks broken")
	}
	if !ISOTime("23:59") || !ISOTime("12:30:45.123") || ISOTime("24:00") || ISOTime("12:60") {
		t.Fatalf("iso time checks broken")
	}
	for _, s := range []string{"2024-01-15T10:30", "2024-01-15T10:30:00Z", "2024-01-15T10:30:00+09:00", "2024-01-15T10:30:00.5-05:00"} {
		if !ISODateTime(s) {
			t.Fatalf("expected valid iso datetime: %q", s)
		}
	}
	if ISODateTime("2024-01-15 10:30") || ISODateTime("not-a-date") {
		t.Fatalf("expected invalid iso datetime accepted")
	}
}

func TestHostname(t *testing.T) {
	if !Hostname("example.com") || !Hostname("a-b.c-d.io") {
		t.Fatalf("expected valid hostnames")
	}
	for _, s := range []string{"", "-bad.com", "bad-.com", "under_score.com", "a..b"} {
		if Hostname(s) {
			t.Fatalf("expected invalid hostname: %q", s)
		}
	}
}

func TestIDFormats(t *testing.T) {
	if !CUID2("tz4a98xxat96iws9zmbrgj3a") || CUID2("1abc") || CUID2("") || CUID2("ABC") {
		t.Fatalf("cuid2 checks broken")
	}
	if !ULID("01ARZ3NDEKTSV4RRFFQ69G5FAV") || ULID("01ARZ3NDEKTSV4RRFFQ69G5FA") || ULID("01ARZ3NDEKTSV4RRFFQ69G5FAI") {
		t.Fatalf("ulid checks broken")
	}
	if !NanoID("V1StGXR8_Z5jdHi6B-myT") || NanoID("") || NanoID("has space") {
		t.Fatalf("nanoid checks broken")
	}
}

func TestEmojiAndSlug(t *testing.T) {
	if !Emoji("hello 😀") || Emoji("plain text") {
		t.Fatalf("emoji checks broken")
	}
	if !Slug("my-post-1") || Slug("-lead") || Slug("trail-") || Slug("double--hyphen") || Slug("Upper") || Slug("") {
		t.Fatalf("slug checks broken")
	}
}
