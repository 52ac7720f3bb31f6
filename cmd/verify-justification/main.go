// Copyright 2025 Blink Labs Software
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

// verify-justification checks a GRANDPA finality proof offline: given the
// hex-encoded justification, the expected finalized block, the authority set
// id and the weighted authority list, it prints the verdict a bridge relay
// would act on.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/huang-lei1/parity-bridges-common/grandpa"
	"github.com/huang-lei1/parity-bridges-common/header"
	"github.com/huang-lei1/parity-bridges-common/justification"
)

// chainHeader is the header layout of the bridged demo chain. Deployments
// against other chains supply their own header type to the library.
type chainHeader struct {
	Parent header.H256
	Num    uint64
}

func (h chainHeader) Hash() header.H256 {
	return header.HashOf(h)
}

func (h chainHeader) ParentHash() header.H256 {
	return h.Parent
}

func (h chainHeader) Number() uint64 {
	return h.Num
}

type cmdFlags struct {
	proofFile    string
	targetHash   string
	targetNumber uint64
	setID        uint64
	authorities  string
}

func parseFlags() *cmdFlags {
	f := &cmdFlags{}
	flag.StringVar(
		&f.proofFile,
		"proof",
		"",
		"path to file with hex-encoded justification ('-' for stdin)",
	)
	flag.StringVar(
		&f.targetHash,
		"target-hash",
		"",
		"hex hash of the block the proof is expected to finalize",
	)
	flag.Uint64Var(
		&f.targetNumber,
		"target-number",
		0,
		"number of the block the proof is expected to finalize",
	)
	flag.Uint64Var(&f.setID, "set-id", 0, "authority set id the proof was produced by")
	flag.StringVar(
		&f.authorities,
		"authorities",
		"",
		"comma-separated authority list as <hex pubkey>:<weight>",
	)
	flag.Parse()
	return f
}

func parseHash(value string) (header.H256, error) {
	data, err := hex.DecodeString(strings.TrimPrefix(value, "0x"))
	if err != nil {
		return header.H256{}, err
	}
	return header.NewH256(data)
}

func parseAuthorities(value string) (grandpa.AuthorityList, error) {
	authorities := grandpa.AuthorityList{}
	for _, entry := range strings.Split(value, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		pubkey, weightStr, found := strings.Cut(entry, ":")
		if !found {
			return nil, fmt.Errorf("entry %q: expected <hex pubkey>:<weight>", entry)
		}
		keyData, err := hex.DecodeString(strings.TrimPrefix(pubkey, "0x"))
		if err != nil {
			return nil, fmt.Errorf("entry %q: %s", entry, err)
		}
		var id grandpa.AuthorityID
		if len(keyData) != len(id) {
			return nil, fmt.Errorf(
				"entry %q: expected %d-byte pubkey, got %d",
				entry,
				len(id),
				len(keyData),
			)
		}
		copy(id[:], keyData)
		weight, err := strconv.ParseUint(weightStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("entry %q: %s", entry, err)
		}
		authorities = append(authorities, grandpa.Authority{
			ID:     id,
			Weight: grandpa.AuthorityWeight(weight),
		})
	}
	return authorities, nil
}

func readProof(path string) ([]byte, error) {
	var raw []byte
	var err error
	if path == "-" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	return hex.DecodeString(strings.TrimSpace(strings.TrimPrefix(string(raw), "0x")))
}

func main() {
	f := parseFlags()
	if f.proofFile == "" || f.targetHash == "" || f.authorities == "" {
		flag.Usage()
		os.Exit(2)
	}

	targetHash, err := parseHash(f.targetHash)
	if err != nil {
		fmt.Printf("ERROR: invalid target hash: %s\n", err)
		os.Exit(1)
	}
	authorities, err := parseAuthorities(f.authorities)
	if err != nil {
		fmt.Printf("ERROR: invalid authorities: %s\n", err)
		os.Exit(1)
	}
	voters, err := grandpa.NewVoterSet(authorities)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	proof, err := readProof(f.proofFile)
	if err != nil {
		fmt.Printf("ERROR: reading proof: %s\n", err)
		os.Exit(1)
	}

	err = justification.Verify[header.H256, uint64, chainHeader](
		targetHash,
		f.targetNumber,
		grandpa.SetID(f.setID),
		voters,
		proof,
	)
	if err != nil {
		fmt.Printf("REJECTED: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf(
		"OK: justification finalizes block %d (%s) under set %d\n",
		f.targetNumber,
		targetHash,
		f.setID,
	)
}
