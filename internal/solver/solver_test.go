package solver

import "testing"

func TestIsValidRejectsShortWords(t *testing.T) {
	for _, word := range []string{"", "c", "ca", "cab"} {
		if IsValid(word, 'c', "ab") {
			t.Fatalf("expected %q to be invalid", word)
		}
	}
}

func TestIsValidRequiresRequiredLetter(t *testing.T) {
	for _, word := range []string{"oeoe", "oooo"} {
		if IsValid(word, 't', "oe") {
			t.Fatalf("expected %q to be invalid without required letter", word)
		}
	}
}

func TestIsValidAcceptsRequiredOnlyWords(t *testing.T) {
	for _, word := range []string{"tttt", "tttttt"} {
		if !IsValid(word, 't', "oe") {
			t.Fatalf("expected %q to be valid", word)
		}
	}
	if !IsValid("ssss", 's', "oe") {
		t.Fatalf("expected ssss to be valid")
	}
}

func TestIsValidAcceptsExtraLetters(t *testing.T) {
	for _, word := range []string{"tote", "totet", "mote", "molet"} {
		if !IsValid(word, 't', "elom") {
			t.Fatalf("expected %q to be valid", word)
		}
	}
}

func TestIsValidRejectsLettersOutsideAlphabet(t *testing.T) {
	for _, word := range []string{"dote", "note"} {
		if IsValid(word, 't', "elom") {
			t.Fatalf("expected %q to be invalid", word)
		}
	}
}

func TestIsValidIsCaseSensitive(t *testing.T) {
	if IsValid("Tote", 't', "elom") {
		t.Fatalf("expected capital T to fall outside the literal alphabet")
	}
}

func TestScoreFourLetterWord(t *testing.T) {
	got := Score("tome", 't', "elom")
	if got.Score != 1 || got.Pangram {
		t.Fatalf("unexpected result for tome: %+v", got)
	}
}

func TestScoreLongerWord(t *testing.T) {
	got := Score("motee", 't', "elom")
	if got.Score != 5 || got.Pangram {
		t.Fatalf("unexpected result for motee: %+v", got)
	}
}

func TestScorePangram(t *testing.T) {
	got := Score("motel", 't', "elom")
	if got.Score != 12 || !got.Pangram {
		t.Fatalf("unexpected result for motel: %+v", got)
	}
	got = Score("emotel", 't', "elom")
	if got.Score != 13 || !got.Pangram {
		t.Fatalf("unexpected result for emotel: %+v", got)
	}
}

func TestScorePangramBonusIsExactlySeven(t *testing.T) {
	got := Score("motel", 't', "elom")
	if got.Score != len("motel")+7 {
		t.Fatalf("expected length plus 7 for a pangram, got %d", got.Score)
	}
}

func TestScoreDeduplicatesExtraLetters(t *testing.T) {
	// Duplicate letters in extra must not change the pangram denominator.
	plain := Score("motel", 't', "elom")
	duped := Score("motel", 't', "eelomm")
	if plain != duped {
		t.Fatalf("duplicate extras changed the result: %+v vs %+v", plain, duped)
	}
	if !duped.Pangram {
		t.Fatalf("expected motel to stay a pangram with duplicated extras")
	}
}

func TestScoreToleratesRequiredInExtra(t *testing.T) {
	got := Score("motel", 't', "telom")
	if got.Score != 12 || !got.Pangram {
		t.Fatalf("unexpected result with required repeated in extra: %+v", got)
	}
}

func TestScoreIsPure(t *testing.T) {
	first := Score("motel", 't', "elom")
	second := Score("motel", 't', "elom")
	if first != second {
		t.Fatalf("expected identical results, got %+v and %+v", first, second)
	}
}

func TestFindAllKeepsInputOrder(t *testing.T) {
	words := []string{"tote", "vote", "mote", "soapy"}
	answers := FindAll(words, 't', "elom")
	if len(answers) != 2 {
		t.Fatalf("expected 2 answers, got %d", len(answers))
	}
	if answers[0].Word != "tote" || answers[1].Word != "mote" {
		t.Fatalf("unexpected order: %v", answers)
	}
}

func TestFindAllEmptyInput(t *testing.T) {
	if got := FindAll(nil, 't', "elom"); len(got) != 0 {
		t.Fatalf("expected no answers for empty input, got %v", got)
	}
}
