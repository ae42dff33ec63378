package formdoc

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-formdoc/pkg/model"
)

const facadePayload = `{
  "sections": [
    {
      "sectionId": "tanks",
      "order": 1,
      "showSection": true,
      "sectionTitle": {"en": "TANK INSPECTION", "es": "INSPECCIÓN DE TANQUES"},
      "columns": [
        {
          "columnId": "col-1",
          "order": 1,
          "columnTitle": {"en": "Checks"},
          "items": [
            {
              "itemId": "item-1",
              "type": "checkbox",
              "order": 1,
              "itemLabel": {"en": "Vents clear"},
              "inputItem": true
            }
          ]
        }
      ]
    }
  ]
}`

func TestGeneratePDFEndToEnd(t *testing.T) {
	output, err := GeneratePDF(context.Background(), []byte(facadePayload), OrderMetadata{
		OrderNumber: "WO-9",
		Customer:    "Acme Fuels",
	}, nil, "en")
	if err != nil {
		t.Fatalf("generate pdf: %v", err)
	}
	if !bytes.HasPrefix(output, []byte("%PDF-")) {
		t.Fatalf("output is not a PDF: %.8q", output)
	}
}

func TestGenerateHTMLEndToEnd(t *testing.T) {
	output, err := GenerateHTML(context.Background(), []byte(facadePayload), OrderMetadata{}, nil, "es")
	if err != nil {
		t.Fatalf("generate html: %v", err)
	}

	markup := string(output)
	if !strings.Contains(markup, "INSPECCIÓN DE TANQUES") {
		t.Fatal("spanish section title missing from markup")
	}
	if !strings.Contains(markup, "INFORMACIÓN DE LA ORDEN DE TRABAJO") {
		t.Fatal("work order header missing from markup")
	}
}

func TestNewBuilderBuildsModel(t *testing.T) {
	doc, err := Decode([]byte(facadePayload))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	builder := NewBuilder(BuilderOptions{})
	built, err := builder.Build(context.Background(), doc, model.BuildInput{})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	found := false
	for _, block := range built.Blocks {
		if title, ok := block.(model.TitleBlock); ok && title.Text == "TANK INSPECTION" {
			found = true
		}
	}
	if !found {
		t.Fatal("section title missing from built model")
	}
}
