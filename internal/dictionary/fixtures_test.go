package dictionary

import (
	"testing/fstest"
)

func englishFS() fstest.MapFS {
	return fstest.MapFS{
		"four.json": {Data: []byte(`{
			"tree": {"definitions": ["a woody plant"], "synonyms": ["arbor"], "usages": ["the tree grew tall"]},
			"bark": {"definitions": ["the outer layer of a tree"]}
		}`)},
		"five.json": {Data: []byte(`{
			"grape": {"definitions": ["a small fruit"], "synonyms": [], "usages": []},
			"lemon": {"definitions": ["a sour fruit"]},
			"Mango": {"definitions": ["a tropical fruit"]}
		}`)},
		"six.json": {Data: []byte(`{
			"banana": {"definitions": ["a long fruit"]},
			"apple": {"definitions": ["a round fruit"], "synonyms": ["pome"], "usages": ["an apple a day"]}
		}`)},
		"seven.json": {Data: []byte(`{"cabbage": {"definitions": ["a leafy vegetable"]}}`)},
		"eight.json": {Data: []byte(`{"zucchini": {"definitions": ["a summer squash"]}}`)},
	}
}

func portugueseFS() fstest.MapFS {
	return fstest.MapFS{
		"three/g.json": {Data: []byte(`{"gol": {"definitions": ["ponto no futebol"]}}`)},
		"four/c.json": {Data: []byte(`{
			"casa": {"definitions": ["moradia"], "synonyms": ["lar"], "examples": ["a casa é azul"]}
		}`)},
		"four/g.json":  {Data: []byte(`{"gato": {"definitions": ["felino"]}}`)},
		"four/README":  {Data: []byte(`not a shard`)},
		"five/m.json":  {Data: []byte(`{"mesas": {"definitions": ["móveis"]}}`)},
		"five/c.json":  {Data: []byte(`{"carro": {"definitions": ["veículo"]}}`)},
		"six/p.json":   {Data: []byte(`{"pessoa": {"definitions": ["ser humano"]}}`)},
		"seven/j.json": {Data: []byte(`{"janelas": {"definitions": ["aberturas"]}}`)},
		"eight/c.json": {Data: []byte(`{"cadernos": {"definitions": ["livros de notas"]}}`)},
	}
}

func plainFS() fstest.MapFS {
	return fstest.MapFS{
		"palavras_4.txt": {Data: []byte("casa\n\n  gato  \n# comment\nMESA\n")},
		"palavras_5.txt": {Data: []byte("carro\nporta\n")},
	}
}

func bundleFS() fstest.MapFS {
	return fstest.MapFS{
		DefaultBundleFile: {Data: []byte(`{
			"len_four": {"tree": ["a woody plant"], "bark": ["outer layer of a tree"]},
			"len_five": {"apple": ["a round fruit", "a tech company"]}
		}`)},
	}
}

func testLanguages() []*Language {
	return []*Language{
		{Code: "en-us", Layout: LayoutFlat, MinLength: 4, MaxLength: 8, Loader: NewFlatFileLoader(englishFS(), nil)},
		{Code: "pt-br", Layout: LayoutSharded, MinLength: 3, MaxLength: 8, Loader: NewShardedDirectoryLoader(portugueseFS(), []string{"examples"})},
		{Code: "pt-legacy", Layout: LayoutPlain, MinLength: 4, MaxLength: 5, Loader: NewPlainListLoader(plainFS(), "")},
		{Code: "en-bundle", Layout: LayoutBundle, MinLength: 4, MaxLength: 8, Loader: NewBundleLoader(bundleFS(), "")},
	}
}
