package fluid

import "testing"

type codecTestTokens struct {
	Name  string `json:"name" yaml:"name"`
	Width int    `json:"width" yaml:"width"`
}

func TestJSONCodec_Unmarshal(t *testing.T) {
	var tok codecTestTokens
	if err := (JSONCodec{}).Unmarshal([]byte(`{"name": "md", "width": 768}`), &tok); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if tok.Name != "md" || tok.Width != 768 {
		t.Errorf("unexpected result %+v", tok)
	}
}

func TestJSONCodec_UnmarshalInvalid(t *testing.T) {
	var tok codecTestTokens
	if err := (JSONCodec{}).Unmarshal([]byte(`{not valid json}`), &tok); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestYAMLCodec_Unmarshal(t *testing.T) {
	var tok codecTestTokens
	if err := (YAMLCodec{}).Unmarshal([]byte("name: lg\nwidth: 1024"), &tok); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if tok.Name != "lg" || tok.Width != 1024 {
		t.Errorf("unexpected result %+v", tok)
	}
}

func TestAutoCodec_DetectsFormat(t *testing.T) {
	var fromJSON, fromYAML codecTestTokens
	if err := (AutoCodec{}).Unmarshal([]byte("  {\"name\": \"sm\", \"width\": 640}"), &fromJSON); err != nil {
		t.Fatalf("json: %v", err)
	}
	if err := (AutoCodec{}).Unmarshal([]byte("name: xl\nwidth: 1280"), &fromYAML); err != nil {
		t.Fatalf("yaml: %v", err)
	}
	if fromJSON.Width != 640 || fromYAML.Width != 1280 {
		t.Errorf("unexpected results %+v %+v", fromJSON, fromYAML)
	}
}

func TestCodec_ContentTypes(t *testing.T) {
	if ct := (JSONCodec{}).ContentType(); ct != "application/json" {
		t.Errorf("expected 'application/json', got %q", ct)
	}
	if ct := (YAMLCodec{}).ContentType(); ct != "application/x-yaml" {
		t.Errorf("expected 'application/x-yaml', got %q", ct)
	}
}

func TestCodecFor(t *testing.T) {
	cases := map[string]string{
		"tokens.json": "application/json",
		"tokens.YAML": "application/x-yaml",
		"tokens.yml":  "application/x-yaml",
		"tokens":      "application/octet-stream",
	}
	for path, want := range cases {
		if got := CodecFor(path).ContentType(); got != want {
			t.Errorf("%s: expected %q, got %q", path, want, got)
		}
	}
}
