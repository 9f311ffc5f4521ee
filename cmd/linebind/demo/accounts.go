// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package demo

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/bureau-foundation/linebind/lib/binding"
)

// Account is one entry of the in-memory registry.
type Account struct {
	ID    uuid.UUID
	Login string
	Role  string
	Quota uint64
	Admin bool
	Tags  []string
}

// Accounts is an in-memory account registry.
type Accounts struct {
	out      io.Writer
	newID    func() uuid.UUID
	accounts map[string]*Account
}

// NewAccounts returns an empty registry printing to out. newID
// generates account IDs; nil uses uuid.New.
func NewAccounts(out io.Writer, newID func() uuid.UUID) *Accounts {
	if newID == nil {
		newID = uuid.New
	}
	return &Accounts{out: out, newID: newID, accounts: make(map[string]*Account)}
}

type createParams struct {
	Login string `arg:"login" desc:"account name"`
	Role  string `arg:"-role" kind:"required" desc:"role granted to the account"`
	Quota uint64 `arg:"-quota" kind:"optional" type:"bytes" desc:"storage quota, such as 10GB"`
	Admin bool   `arg:"-admin" desc:"grant administrator rights"`
}

type loginParams struct {
	Login string `arg:"login" desc:"account name"`
}

type findParams struct {
	ID uuid.UUID `arg:"id" desc:"account ID"`
}

type tagParams struct {
	Login string   `arg:"login" desc:"account name"`
	Tags  []string `arg:"-tags" kind:"required" desc:"comma separated tags"`
}

// AccountsController returns the account commands under the "user"
// prefix, all sharing registry.
func AccountsController(registry *Accounts) binding.Controller {
	return binding.Controller{
		Prefix:  "user",
		Factory: func() (any, error) { return registry, nil },
		Handlers: []binding.Handler{
			binding.Method("create", "create an account", (*Accounts).create),
			binding.Method("show", "print an account", (*Accounts).show),
			binding.Method("find", "print the account with an ID", (*Accounts).find),
			binding.Method("tag", "replace an account's tags", (*Accounts).tag),
			binding.Method("delete", "delete an account", (*Accounts).remove),
			binding.Method("list", "list account logins", (*Accounts).list),
		},
	}
}

func (a *Accounts) create(params *createParams) error {
	if _, exists := a.accounts[params.Login]; exists {
		return fmt.Errorf("account %q already exists", params.Login)
	}
	account := &Account{
		ID:    a.newID(),
		Login: params.Login,
		Role:  params.Role,
		Quota: params.Quota,
		Admin: params.Admin,
	}
	a.accounts[account.Login] = account
	fmt.Fprintf(a.out, "created %s (%s)\n", account.Login, account.ID)
	return nil
}

func (a *Accounts) lookup(login string) (*Account, error) {
	account, ok := a.accounts[login]
	if !ok {
		return nil, fmt.Errorf("no account %q", login)
	}
	return account, nil
}

func (a *Accounts) show(params *loginParams) error {
	account, err := a.lookup(params.Login)
	if err != nil {
		return err
	}
	a.print(account)
	return nil
}

func (a *Accounts) find(params *findParams) error {
	for _, account := range a.accounts {
		if account.ID == params.ID {
			a.print(account)
			return nil
		}
	}
	return fmt.Errorf("no account with ID %s", params.ID)
}

func (a *Accounts) print(account *Account) {
	quota := "unlimited"
	if account.Quota > 0 {
		quota = humanize.Bytes(account.Quota)
	}
	fmt.Fprintf(a.out, "%s id=%s role=%s quota=%s admin=%t", account.Login, account.ID, account.Role, quota, account.Admin)
	if len(account.Tags) > 0 {
		fmt.Fprintf(a.out, " tags=%s", strings.Join(account.Tags, ","))
	}
	fmt.Fprintln(a.out)
}

func (a *Accounts) tag(params *tagParams) error {
	account, err := a.lookup(params.Login)
	if err != nil {
		return err
	}
	account.Tags = slices.Clone(params.Tags)
	return nil
}

func (a *Accounts) remove(params *loginParams) error {
	if _, err := a.lookup(params.Login); err != nil {
		return err
	}
	delete(a.accounts, params.Login)
	fmt.Fprintf(a.out, "deleted %s\n", params.Login)
	return nil
}

type listParams struct{}

func (a *Accounts) list(*listParams) error {
	logins := make([]string, 0, len(a.accounts))
	for login := range a.accounts {
		logins = append(logins, login)
	}
	slices.Sort(logins)
	for _, login := range logins {
		fmt.Fprintln(a.out, login)
	}
	return nil
}
