// Command vn2ime converts already-accented Vietnamese text back into the
// keystrokes that would produce it under Telex or VNI, the reverse of
// what the engine package composes.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <telex|vni>\n", os.Args[0])
		os.Exit(1)
	}

	var table map[rune]string
	switch strings.ToLower(os.Args[1]) {
	case "telex":
		table = telexKeystrokeMap()
	case "vni":
		table = vniKeystrokeMap()
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid type %q - use 'telex' or 'vni'\n", os.Args[1])
		os.Exit(1)
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fmt.Println(convertToKeystrokes(line, table))
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, "Error reading from stdin:", err)
		os.Exit(1)
	}
}

// convertToKeystrokes maps every character of s through table, passing
// through unmapped characters (consonants, punctuation, spaces) unchanged.
func convertToKeystrokes(s string, table map[rune]string) string {
	var b strings.Builder
	for _, r := range s {
		if keys, ok := table[r]; ok {
			b.WriteString(keys)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// tonedVowels enumerates every Vietnamese vowel letter across its six
// tones (ngang, huyền, sắc, hỏi, ngã, nặng), base letter first.
func tonedVowels() [][6]rune {
	return [][6]rune{
		{'a', 'à', 'á', 'ả', 'ã', 'ạ'},
		{'ă', 'ằ', 'ắ', 'ẳ', 'ẵ', 'ặ'},
		{'â', 'ầ', 'ấ', 'ẩ', 'ẫ', 'ậ'},
		{'e', 'è', 'é', 'ẻ', 'ẽ', 'ẹ'},
		{'ê', 'ề', 'ế', 'ể', 'ễ', 'ệ'},
		{'i', 'ì', 'í', 'ỉ', 'ĩ', 'ị'},
		{'o', 'ò', 'ó', 'ỏ', 'õ', 'ọ'},
		{'ô', 'ồ', 'ố', 'ổ', 'ỗ', 'ộ'},
		{'ơ', 'ờ', 'ớ', 'ở', 'ỡ', 'ợ'},
		{'u', 'ù', 'ú', 'ủ', 'ũ', 'ụ'},
		{'ư', 'ừ', 'ứ', 'ử', 'ữ', 'ự'},
		{'y', 'ỳ', 'ý', 'ỷ', 'ỹ', 'ỵ'},
	}
}

func buildKeystrokeMap(baseStrokes map[rune]string, toneStrokes [6]string) map[rune]string {
	m := make(map[rune]string)
	for _, set := range tonedVowels() {
		base := set[0]
		stroke, ok := baseStrokes[base]
		if !ok {
			stroke = string(base)
		}
		for toneIndex, toned := range set {
			m[toned] = stroke + toneStrokes[toneIndex]
		}
	}
	return m
}

func telexKeystrokeMap() map[rune]string {
	m := buildKeystrokeMap(map[rune]string{
		'ă': "aw", 'â': "aa", 'ê': "ee", 'ô': "oo", 'ơ': "ow", 'ư': "uw",
	}, [6]string{"", "f", "s", "r", "x", "j"})
	m['đ'] = "dd"
	return m
}

func vniKeystrokeMap() map[rune]string {
	m := buildKeystrokeMap(map[rune]string{
		'ă': "a8", 'â': "a6", 'ê': "e6", 'ô': "o6", 'ơ': "o7", 'ư': "u7",
	}, [6]string{"", "2", "1", "3", "4", "5"})
	m['đ'] = "d9"
	return m
}
