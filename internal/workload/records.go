// Copyright 2025 Esteban Alvarez. All Rights Reserved.
//
// Created: October 2025
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package workload

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// User is the record shape used by the JSON codec workload.
type User struct {
	ID     int      `json:"id"`
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Age    int      `json:"age"`
	Active bool     `json:"active"`
	Tags   []string `json:"tags"`
}

// NewUsers returns n deterministic users.
func NewUsers(n int) []User {
	users := make([]User, n)
	for i := range users {
		id := strconv.Itoa(i)
		users[i] = User{
			ID:     i,
			Name:   "User " + id,
			Email:  "user" + id + "@example.com",
			Age:    20 + i%50,
			Active: i%3 != 0,
			Tags:   []string{"tag1", "tag2", "tag3"},
		}
	}
	return users
}

// MarshalEach encodes every user as its own document.
func MarshalEach(users []User) ([][]byte, error) {
	docs := make([][]byte, len(users))
	for i := range users {
		b, err := json.Marshal(&users[i])
		if err != nil {
			return nil, fmt.Errorf("marshal user %d: %w", i, err)
		}
		docs[i] = b
	}
	return docs, nil
}

// UnmarshalEach decodes one user per document.
func UnmarshalEach(docs [][]byte) ([]User, error) {
	users := make([]User, len(docs))
	for i, d := range docs {
		if err := json.Unmarshal(d, &users[i]); err != nil {
			return nil, fmt.Errorf("unmarshal document %d: %w", i, err)
		}
	}
	return users, nil
}

// MarshalBulk encodes users as a single JSON array.
func MarshalBulk(users []User) ([]byte, error) {
	b, err := json.Marshal(users)
	if err != nil {
		return nil, fmt.Errorf("marshal bulk: %w", err)
	}
	return b, nil
}

// UnmarshalBulk decodes a single JSON array of users.
func UnmarshalBulk(doc []byte) ([]User, error) {
	var users []User
	if err := json.Unmarshal(doc, &users); err != nil {
		return nil, fmt.Errorf("unmarshal bulk: %w", err)
	}
	return users, nil
}

// UsersEqual reports whether a and b hold the same users in the same order.
func UsersEqual(a, b []User) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		x, y := a[i], b[i]
		if x.ID != y.ID || x.Name != y.Name || x.Email != y.Email || x.Age != y.Age || x.Active != y.Active {
			return false
		}
		if len(x.Tags) != len(y.Tags) {
			return false
		}
		for j := range x.Tags {
			if x.Tags[j] != y.Tags[j] {
				return false
			}
		}
	}
	return true
}
