package layout

import "fmt"

func ExampleTable_Lookup() {
	t := PC.Table()
	for _, c := range []byte{'a', 'A', '(', '\b'} {
		e, _ := t.Lookup(c)
		fmt.Printf("%q %s\n", c, e)
	}
	// Output:
	// 'a' 0x04
	// 'A' 0x04|SHIFT
	// '(' 0x27|SHIFT
	// '\b' 0x2a
}

func ExampleEntry_Decode() {
	t := Notebook.Table()
	e, _ := t.Lookup('@')
	u, m := e.Decode()
	fmt.Println(u, m)
	// Output: 2 AltGr
}

func ExampleKeyForRune() {
	for _, r := range "שלום" {
		k, _ := KeyForRune(r)
		fmt.Printf("%s %d\n", k, k)
	}
	// Output:
	// KEY_HE_SHIN 140
	// KEY_HE_LAMED 150
	// KEY_HE_VAV 160
	// KEY_HE_FINAL_MEM 154
}
