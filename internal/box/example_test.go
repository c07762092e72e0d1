package box_test

import (
	"encoding/base64"
	"fmt"

	"github.com/idelchi/encbox/internal/box"
	"github.com/idelchi/encbox/internal/encryption"
)

func Example() {
	builder, err := box.NewBuilder().
		SetPassword("password").
		AddFields("alpha", "beta", "gamma").
		SetCipher(encryption.AES128CBC)
	if err != nil {
		fmt.Println(err)

		return
	}

	container, err := builder.Build()
	if err != nil {
		fmt.Println(err)

		return
	}

	ciphertext, _ := container.Encrypt()
	fmt.Println(base64.StdEncoding.EncodeToString(ciphertext))

	opened, _ := box.Decrypt("password", ciphertext, encryption.AES128CBC)
	fmt.Println(string(opened.Fields()))
	// Output:
	// hoEf4u0PKG7vU1mChb4iYA==
	// alphabetagamma
}
