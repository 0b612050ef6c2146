package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"Dogcat Pet Bed", "dogcat-pet-bed"},
		{"Churu Creamy Purée 3-Flavor", "churu-creamy-puree-3-flavor"},
		{"Mouse Toys (Set of 10)", "mouse-toys-set-of-10"},
		{"Petlab Co. Probiotic for Dogs", "petlab-co-probiotic-for-dogs"},
		{"  --Leading and trailing--  ", "leading-and-trailing"},
		{"Ça va à l'école", "ca-va-a-l-ecole"},
		{"!!!", ""},
		{"ＦＵＬＬ width", "full-width"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Make(tt.in))
		})
	}
}

func TestMake_Idempotent(t *testing.T) {
	inputs := []string{
		"Royal Canin Adult Dry Food",
		"S.A Soft Chews",
		"Gud Dog Food 2.5kg",
		"ß and Æ ligatures",
		"日本語 text",
		"a--b__c",
	}

	for _, in := range inputs {
		once := Make(in)
		assert.Equal(t, once, Make(once), "slug of %q is not stable", in)
		assert.Equal(t, once, Make(in), "slug of %q is not deterministic", in)
	}
}

func TestTokens(t *testing.T) {
	assert.Equal(t, []string{"royal", "canin", "adult", "dry", "food"}, Tokens("Royal Canin Adult Dry Food"))
	assert.Equal(t, []string{"soft", "chews"}, Tokens("S.A Soft Chews"))
	assert.Empty(t, Tokens(""))
}
