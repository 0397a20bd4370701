package mlimage

import "testing"

func TestFromFilePath(t *testing.T) {
	img, err := FromFilePath("/tmp/photo.jpg")
	if err != nil {
		t.Fatalf("FromFilePath failed: %v", err)
	}

	m := img.Marshal()
	if m["type"] != "file" {
		t.Errorf("Expected type file, got %v", m["type"])
	}
	if m["path"] != "/tmp/photo.jpg" {
		t.Errorf("Expected path to be populated, got %v", m["path"])
	}
	if _, ok := m["metadata"]; ok {
		t.Error("File-backed image should not carry metadata")
	}
	if _, ok := m["bytes"]; ok {
		t.Error("File-backed image should not carry bytes")
	}
}

func TestFromFilePathEmpty(t *testing.T) {
	if _, err := FromFilePath(""); err == nil {
		t.Error("Empty path should fail")
	}
}

func TestFromFileNil(t *testing.T) {
	if _, err := FromFile(nil); err == nil {
		t.Error("Nil file should fail")
	}
}

func TestFromBytes(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03}
	md := FrameMetadata{Width: 640, Height: 480, Rotation: Rotation180}

	img, err := FromBytes(data, md)
	if err != nil {
		t.Fatalf("FromBytes failed: %v", err)
	}

	m := img.Marshal()
	if m["type"] != "bytes" {
		t.Errorf("Expected type bytes, got %v", m["type"])
	}
	if _, ok := m["path"]; ok {
		t.Error("Buffer-backed image should not carry a path")
	}

	payload, ok := m["bytes"].([]byte)
	if !ok || len(payload) != 3 {
		t.Errorf("Expected byte payload, got %v", m["bytes"])
	}

	metadata, ok := m["metadata"].(map[string]any)
	if !ok {
		t.Fatalf("Expected metadata mapping, got %v", m["metadata"])
	}
	if metadata["width"] != 640 || metadata["height"] != 480 {
		t.Errorf("Metadata dimensions did not round-trip: %v", metadata)
	}
	if metadata["rotation"] != 180 {
		t.Errorf("Expected rotation 180, got %v", metadata["rotation"])
	}
}

func TestFromBytesPreconditions(t *testing.T) {
	md := FrameMetadata{Width: 640, Height: 480}

	if _, err := FromBytes(nil, md); err == nil {
		t.Error("Nil bytes should fail")
	}

	if _, err := FromBytes([]byte{}, md); err == nil {
		t.Error("Empty bytes should fail")
	}

	if _, err := FromBytes([]byte{0x01}, nil); err == nil {
		t.Error("Missing metadata should fail")
	}

	bad := PlanarMetadata{Width: 640, Height: 480}
	if _, err := FromBytes([]byte{0x01}, bad); err == nil {
		t.Error("Invalid planar metadata should fail")
	}
}

func TestFromBytesPlanarRoundTrip(t *testing.T) {
	md := PlanarMetadata{
		Width:     640,
		Height:    480,
		Rotation:  Rotation90,
		RawFormat: 17,
		Planes:    []Plane{{BytesPerRow: 640, Height: 480, Width: 640}},
	}

	img, err := FromBytes([]byte{0xff}, md)
	if err != nil {
		t.Fatalf("FromBytes failed: %v", err)
	}

	metadata, ok := img.Marshal()["metadata"].(map[string]any)
	if !ok {
		t.Fatal("Expected metadata mapping")
	}
	if metadata["rawFormat"] != int32(17) {
		t.Errorf("Raw format did not round-trip: %v", metadata["rawFormat"])
	}
	planes, ok := metadata["planeData"].([]map[string]any)
	if !ok || len(planes) != 1 {
		t.Fatalf("Expected one plane mapping, got %v", metadata["planeData"])
	}
	if planes[0]["bytesPerRow"] != 640 || planes[0]["height"] != 480 || planes[0]["width"] != 640 {
		t.Errorf("Plane did not round-trip: %v", planes[0])
	}
}
