package browser

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/onsi/gomega"
)

func Test_Page_FindField(t *testing.T) {
	fieldNode := &NodeMock{}
	tests := []struct {
		name      string
		findXPath func(ctx context.Context, xpath string) (Node, error)
		wantField bool
		wantErr   bool
	}{
		{
			name: "returns a field when a strategy matches",
			findXPath: func(ctx context.Context, xpath string) (Node, error) {
				if strings.Contains(xpath, "@name = 'country'") {
					return fieldNode, nil
				}
				return nil, nil
			},
			wantField: true,
		},
		{
			name: "returns a nil field when nothing matches",
			findXPath: func(ctx context.Context, xpath string) (Node, error) {
				return nil, nil
			},
		},
		{
			name: "returns driver errors",
			findXPath: func(ctx context.Context, xpath string) (Node, error) {
				return nil, fmt.Errorf("target closed")
			},
			wantErr: true,
		},
	}

	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			page := NewPage(&DocumentMock{FindXPathFunc: tt.findXPath})

			field, err := page.FindField(context.Background(), "country")
			g.Expect(err != nil).To(gomega.Equal(tt.wantErr))
			if tt.wantField {
				g.Expect(field).NotTo(gomega.BeNil())
			} else {
				g.Expect(field == nil).To(gomega.BeTrue())
			}
		})
	}
}

func Test_Field_FindOption(t *testing.T) {
	g := gomega.NewWithT(t)
	optionNode := &NodeMock{
		EvaluateFunc: func(ctx context.Context, fn string, arg interface{}) (interface{}, error) {
			if fn == textFunction {
				return "Canada", nil
			}
			return "CA", nil
		},
	}
	fieldNode := &NodeMock{
		FindXPathFunc: func(ctx context.Context, xpath string) (Node, error) {
			if xpath == ".//option[normalize-space(string(.)) = 'Canada']" {
				return optionNode, nil
			}
			return nil, nil
		},
	}
	f := &field{element{node: fieldNode}}

	opt, err := f.FindOption(context.Background(), "Canada")
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(opt).NotTo(gomega.BeNil())
	g.Expect(fieldNode.FindXPathCalls()).To(gomega.HaveLen(2))

	value, err := opt.Attribute(context.Background(), "value")
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(value).To(gomega.Equal("CA"))
	g.Expect(optionNode.EvaluateCalls()[0].Arg).To(gomega.Equal("value"))

	text, err := opt.Text(context.Background())
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(text).To(gomega.Equal("Canada"))

	missing, err := f.FindOption(context.Background(), "Mexico")
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(missing == nil).To(gomega.BeTrue())
}

func Test_Field_Value(t *testing.T) {
	tests := []struct {
		name    string
		result  interface{}
		want    Value
		wantErr bool
	}{
		{name: "single select", result: "US", want: ScalarValue("US")},
		{name: "multi select", result: []interface{}{"a", "b"}, want: MultiValue("a", "b")},
		{name: "unchecked checkbox", result: nil, want: ScalarValue("")},
		{name: "unexpected result", result: map[string]interface{}{}, wantErr: true},
	}

	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			node := &NodeMock{
				EvaluateFunc: func(ctx context.Context, fn string, arg interface{}) (interface{}, error) {
					g.Expect(fn).To(gomega.Equal(valueFunction))
					return tt.result, nil
				},
			}
			got, err := (&field{element{node: node}}).Value(context.Background())
			g.Expect(err != nil).To(gomega.Equal(tt.wantErr))
			if !tt.wantErr {
				g.Expect(got).To(gomega.Equal(tt.want))
			}
		})
	}
}

func Test_Field_Options(t *testing.T) {
	g := gomega.NewWithT(t)
	node := &NodeMock{
		EvaluateFunc: func(ctx context.Context, fn string, arg interface{}) (interface{}, error) {
			return []interface{}{
				[]interface{}{"Canada", "CA"},
				[]interface{}{"United States", "US"},
			}, nil
		},
	}

	options, err := (&field{element{node: node}}).Options(context.Background())
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(options).To(gomega.Equal([]OptionInfo{
		{Label: "Canada", Value: "CA"},
		{Label: "United States", Value: "US"},
	}))
}

func Test_Field_Fill(t *testing.T) {
	g := gomega.NewWithT(t)
	node := &NodeMock{
		FillFunc: func(ctx context.Context, value string) error { return nil },
	}

	err := (&field{element{node: node}}).Fill(context.Background(), "john")
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(node.FillCalls()).To(gomega.HaveLen(1))
	g.Expect(node.FillCalls()[0].Value).To(gomega.Equal("john"))
}

func Test_Page_VisitAndContent(t *testing.T) {
	g := gomega.NewWithT(t)
	doc := &DocumentMock{
		VisitFunc:   func(ctx context.Context, url string) error { return nil },
		ContentFunc: func(ctx context.Context) (string, error) { return "<html></html>", nil },
	}
	page := NewPage(doc)

	g.Expect(page.Visit(context.Background(), "http://localhost/form")).To(gomega.Succeed())
	g.Expect(doc.VisitCalls()[0].Url).To(gomega.Equal("http://localhost/form"))

	content, err := page.Content(context.Background())
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(content).To(gomega.Equal("<html></html>"))
}
