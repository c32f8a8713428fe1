// SPDX-License-Identifier: Apache-2.0

package client

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/dlenski/corostc/internal/config"
	"github.com/dlenski/corostc/internal/service"
)

// CredentialsFromConfig maps the configured auth material into service
// credentials, without prompting.
func CredentialsFromConfig(auth config.Auth) service.Credentials {
	return service.Credentials{
		Username:    auth.Username,
		Password:    auth.Password,
		AccessToken: auth.AccessToken,
	}
}

// PromptCredentials interactively fills in the username and password
// missing from creds. Prompts go to stderr so piped stdout stays clean;
// the password is read without echo.
func PromptCredentials(creds service.Credentials) (service.Credentials, error) {
	if creds.Username == "" {
		fmt.Fprint(os.Stderr, "Username: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return creds, fmt.Errorf("read username: %w", err)
		}
		creds.Username = strings.TrimSpace(line)
	}

	if creds.Password == "" {
		fmt.Fprintf(os.Stderr, "Password for %s: ", creds.Username)
		secret, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return creds, fmt.Errorf("read password: %w", err)
		}
		creds.Password = string(secret)
	}

	return creds, nil
}
