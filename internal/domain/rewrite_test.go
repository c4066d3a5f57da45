package domain

import "testing"

func TestRewriteLinks_Rename(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "plain",
			text: "see [[Note]]",
			want: "see [[Note2]]",
		},
		{
			name: "plain with alias",
			text: "see [[Note|my note]]",
			want: "see [[Note2|my note]]",
		},
		{
			name: "heading",
			text: "see [[Note#Intro]]",
			want: "see [[Note2#Intro]]",
		},
		{
			name: "heading with alias",
			text: "see [[Note#Intro|start]]",
			want: "see [[Note2#Intro|start]]",
		},
		{
			name: "embed",
			text: "see ![[Note]]",
			want: "see ![[Note2]]",
		},
		{
			name: "folder-prefixed target",
			text: "see [[projects/Note]]",
			want: "see [[Note2]]",
		},
		{
			name: "other targets untouched",
			text: "see [[Other]] and [[Note]]",
			want: "see [[Other]] and [[Note2]]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RewriteLinks(tt.text, "Note.md", "Note2.md", RewriteOptions{})
			if got != tt.want {
				t.Errorf("RewriteLinks = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRewriteLinks_RoundTrip(t *testing.T) {
	texts := []string{
		"see [[A]]",
		"see [[A|alias text]]",
		"see [[A#Some Heading]]",
		"see [[A#Some Heading|alias]]",
		"see ![[A]]",
		"see ![[A|alias]]",
		"mixed [[A]] and ![[A]] and [[A#H|x]]",
	}
	for _, text := range texts {
		there := RewriteLinks(text, "A.md", "B.md", RewriteOptions{})
		back := RewriteLinks(there, "B.md", "A.md", RewriteOptions{})
		if back != text {
			t.Errorf("round trip of %q: got %q via %q", text, back, there)
		}
	}
}

func TestRewriteLinks_Delete(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "plain",
			text: "see [[Note]]",
			want: "see ~~[[Note]]~~",
		},
		{
			name: "plain with alias",
			text: "see [[Note|Alt]]",
			want: "see ~~[[Note|Alt]]~~",
		},
		{
			name: "heading",
			text: "see [[Note#Intro]]",
			want: "see ~~[[Note#Intro]]~~",
		},
		{
			name: "embed",
			text: "see ![[Note]]",
			want: "see ~~![[Note]]~~",
		},
		{
			name: "unrelated text unchanged",
			text: "before [[Note]] after [[Other]]",
			want: "before ~~[[Note]]~~ after [[Other]]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RewriteLinks(tt.text, "Note.md", "", RewriteOptions{})
			if got != tt.want {
				t.Errorf("RewriteLinks = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRewriteLinks_CrossVault(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "plain with alias",
			text: "see [[Report|Q1]]",
			want: "see [[Archive/Report|Q1]]",
		},
		{
			name: "heading preserved",
			text: "see [[Report#Totals]]",
			want: "see [[Archive/Report#Totals]]",
		},
		{
			name: "embed",
			text: "see ![[Report]]",
			want: "see ![[Archive/Report]]",
		},
	}

	opts := RewriteOptions{DestVault: "Archive", CrossVault: true}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RewriteLinks(tt.text, "Report.md", "", opts)
			if got != tt.want {
				t.Errorf("RewriteLinks = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRewriteLinks_CrossVaultSinglePass(t *testing.T) {
	// After the heading pass rewrites a span, the plain pass must not
	// re-prefix it: the original base-name no longer appears there.
	text := "[[Report#T]] and [[Report]]"
	got := RewriteLinks(text, "Report.md", "", RewriteOptions{DestVault: "Archive", CrossVault: true})
	want := "[[Archive/Report#T]] and [[Archive/Report]]"
	if got != want {
		t.Errorf("RewriteLinks = %q, want %q", got, want)
	}
}

func TestRewriteLinks_NoMatchReturnsInput(t *testing.T) {
	text := "nothing here links to it"
	if got := RewriteLinks(text, "Note.md", "Note2.md", RewriteOptions{}); got != text {
		t.Errorf("expected unchanged text, got %q", got)
	}
}
