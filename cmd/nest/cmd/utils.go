package cmd

import (
	"bufio"
	"fmt"
	"os"
)

// confirmIfExists checks whether a file exists and, if so, asks the user
// for confirmation before continuing.
//
// It returns true if the file doesn't exist, or if the user confirmed.
// If ok is false or err is not nil, the caller should abort.
func confirmIfExists(path, msg string) (ok bool, err error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		fmt.Println("other error", err)
		return false, err
	}
	return askForConfirmation(msg), nil
}

// askForConfirmation shows msg and reads a y/n answer from stdin,
// defaulting to no on a bare ENTER.
func askForConfirmation(msg string) bool {
	fmt.Println(msg)
	reader := bufio.NewReader(os.Stdin)
	defaultInput := byte('N')

	for {
		input, _ := reader.ReadString('\n')
		if len(input) == 0 {
			return defaultInput == 'Y'
		}
		c := input[0]
		if c == '\n' {
			c = defaultInput
		}
		switch c {
		case 'Y', 'y':
			return true
		case 'N', 'n':
			return false
		}
	}
}

// check prints err and exits the process if err is not nil.
func check(err error) {
	if err != nil {
		fmt.Printf("error, %v\n", err)
		os.Exit(-1)
	}
}
