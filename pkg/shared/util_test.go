package shared

import (
	"regexp"
	"testing"

	"github.com/onsi/gomega"
)

func Test_Contains(t *testing.T) {
	g := gomega.NewWithT(t)
	g.Expect(Contains([]string{"a", "b"}, "b")).To(gomega.BeTrue())
	g.Expect(Contains([]string{"a", "b"}, "c")).To(gomega.BeFalse())
	g.Expect(Contains([]string(nil), "a")).To(gomega.BeFalse())
}

func Test_FirstNonEmptyOrDefault(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   string
	}{
		{name: "no values", values: nil, want: "./"},
		{name: "all empty", values: []string{"", ""}, want: "./"},
		{name: "first non empty wins", values: []string{"", "reports/", "other/"}, want: "reports/"},
	}

	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			g.Expect(FirstNonEmptyOrDefault("./", tt.values...)).To(gomega.Equal(tt.want))
		})
	}
}

func Test_RandomSuffix(t *testing.T) {
	g := gomega.NewWithT(t)
	first := RandomSuffix(10)
	g.Expect(first).To(gomega.MatchRegexp(`^[0-9a-f]{10}$`))
	g.Expect(RandomSuffix(10)).ToNot(gomega.Equal(first))
	g.Expect(RandomSuffix(64)).To(gomega.HaveLen(32))
}

func Test_UniqueID(t *testing.T) {
	g := gomega.NewWithT(t)
	g.Expect(regexp.MustCompile(`^[0-9a-v]{20}$`).MatchString(UniqueID())).To(gomega.BeTrue())
	g.Expect(UniqueID()).ToNot(gomega.Equal(UniqueID()))
}
