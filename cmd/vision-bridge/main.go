package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	visionbridge "github.com/menta2k/vision-bridge"
	"github.com/menta2k/vision-bridge/internal/config"
	"github.com/menta2k/vision-bridge/internal/utils"
	"github.com/menta2k/vision-bridge/pkg/bridge"
	"github.com/menta2k/vision-bridge/pkg/mlimage"
	"github.com/menta2k/vision-bridge/pkg/processing"
)

func main() {
	var in, detector, endpoint, transport string
	var sendFmt string
	var sendSize int
	var sendQ int

	flag.StringVar(&in, "in", "", "input image path or URL (jpg/png/webp)")
	flag.StringVar(&detector, "detector", "label", "detector to run: barcode|face|label|cloudlabel|text|cloudtext|document")
	flag.StringVar(&endpoint, "endpoint", "", "bridge host URL (default from config)")
	flag.StringVar(&transport, "transport", "", "transport: http or ws (default from config)")

	flag.StringVar(&sendFmt, "sendfmt", "", "re-encode before sending: jpg|png|webp (empty = send file path)")
	flag.IntVar(&sendSize, "sendsize", 1536, "max long side sent to the bridge (px), 0=original")
	flag.IntVar(&sendQ, "sendq", 85, "quality for re-encoded image (1-100)")

	flag.Parse()
	if in == "" {
		log.Fatalf("usage: %s -in input.jpg|URL [-detector barcode|face|label|cloudlabel|text|cloudtext|document] [-endpoint url]", filepath.Base(os.Args[0]))
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if endpoint != "" {
		cfg.Endpoint = endpoint
	}
	if transport != "" {
		cfg.Transport = transport
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	ch, err := newChannel(cfg)
	if err != nil {
		log.Fatalf("Failed to create bridge channel: %v", err)
	}

	img, err := loadInput(in, sendFmt, sendSize, sendQ)
	if err != nil {
		log.Fatal(err)
	}

	vision := visionbridge.New(ch)
	ctx := context.Background()

	result, err := runDetector(ctx, vision, detector, img)
	if err != nil {
		log.Fatalf("Detection failed: %v", err)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(out))
}

func newChannel(cfg *config.Config) (bridge.Channel, error) {
	switch cfg.Transport {
	case "ws":
		return bridge.DialWS(context.Background(), cfg.Endpoint)
	default:
		return bridge.NewHTTPChannel(cfg.Endpoint)
	}
}

// loadInput builds the detection input. Local files are passed by path
// unless re-encoding was requested; URLs are always downloaded and sent as
// a buffer.
func loadInput(in, sendFmt string, sendSize, sendQ int) (mlimage.Image, error) {
	isURL := !utils.FileExists(in)
	if !isURL && !utils.IsImageFile(in) {
		return nil, fmt.Errorf("input is not an image file: %s", in)
	}
	if sendFmt == "" && !isURL {
		return mlimage.FromFilePath(in)
	}
	if sendFmt == "" {
		switch ext := utils.GetFileExtension(in); ext {
		case "jpg", "jpeg", "png", "webp":
			sendFmt = ext
		default:
			sendFmt = "jpg"
		}
	}

	processor := processing.NewProcessor()
	src, err := processor.LoadImageSmart(in)
	if err != nil {
		return nil, err
	}
	return processor.PrepareImage(src, sendFmt, sendSize, sendQ, mlimage.Rotation0)
}

func runDetector(ctx context.Context, vision *visionbridge.Vision, detector string, img mlimage.Image) (any, error) {
	switch detector {
	case "barcode":
		return vision.BarcodeDetector(nil).Detect(ctx, img)
	case "face":
		return vision.FaceDetector(nil).Process(ctx, img)
	case "label":
		return vision.ImageLabeler(nil).Process(ctx, img)
	case "cloudlabel":
		return vision.CloudImageLabeler(nil).Process(ctx, img)
	case "text":
		return vision.TextRecognizer().Process(ctx, img)
	case "cloudtext":
		return vision.CloudTextRecognizer(nil).Process(ctx, img)
	case "document":
		return vision.CloudDocumentTextRecognizer(nil).Process(ctx, img)
	default:
		return nil, fmt.Errorf("unknown detector: %s", detector)
	}
}
