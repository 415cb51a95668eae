// Copyright 2025 Naren Yellavula
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

package avl_test

import (
	"fmt"
	"os"

	"github.com/cybrota/avltree/avl"
)

func Example() {
	tree := avl.New[int]()
	for _, key := range []int{30, 10, 20, 10} {
		tree.Insert(key)
	}
	tree.Delete(30)

	for key, count := range tree.All(avl.PreOrder) {
		fmt.Printf("%d(%d)\n", key, count)
	}

	count, ok := tree.Search(10)
	fmt.Println(count, ok)
	// Output:
	// 20(1)
	// 10(2)
	// 2 true
}

func ExampleTree_Print() {
	tree := avl.New[string]()
	for _, key := range []string{"kiwi", "apple", "plum", "fig"} {
		tree.Insert(key)
	}
	tree.Print(os.Stdout)
	// Output:
	//        /------+ plum(1)
	// |------+ kiwi(1)
	//        |      /------+ fig(1)
	//        \------+ apple(1)
}

func ExamplePrefix() {
	tree := avl.New[string]()
	for _, key := range []string{"go build", "go test", "git log", "go test"} {
		tree.Insert(key)
	}
	for key, count := range avl.Prefix(tree, "go ") {
		fmt.Println(key, count)
	}
	// Output:
	// go build 1
	// go test 2
}
