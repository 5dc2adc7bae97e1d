package normalize

import "testing"

func TestQuery_Idempotent(t *testing.T) {
	cases := []string{
		"  Use 'Terraform-Base'  for THIS  ",
		"",
		"   ",
		`say "hello world"`,
		"aws-ecs-deployment",
	}
	for _, c := range cases {
		once := Query(c)
		twice := Query(once)
		if once != twice {
			t.Errorf("Query not idempotent for %q: %q != %q", c, once, twice)
		}
	}
}

func TestQuery_StripsQuotesAndCollapsesWhitespace(t *testing.T) {
	got := Query(`  Use  'terraform-base'   for   "this project"  `)
	want := "use terraform-base for this project"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestQuery_PreservesHyphensDigitsPunctuation(t *testing.T) {
	got := Query("apply AWS-ECS-Deployment v2, now!")
	want := "apply aws-ecs-deployment v2, now!"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestQuery_EmptyOrWhitespaceOnly(t *testing.T) {
	if got := Query(""); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
	if got := Query("   \t\n  "); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}
