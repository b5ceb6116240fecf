package minhash

// Lane permutation constants. A entries are odd so each lane permutation is a
// bijection over the 32-bit space. Derived from the SHA-256 streams
// "iscc-sum-minhash-a-v0" and "iscc-sum-minhash-b-v0".
var mpa = [Lanes]uint32{
	0x4691315b, 0x1bb37027, 0x35520235, 0x6243f16f,
	0xefd35e0b, 0x598a91d5, 0x3a63dfa3, 0x48d45e7d,
	0x1c81cc6f, 0xb485e095, 0xb7f1c3e9, 0x3c087585,
	0x05d24845, 0x61faf1a7, 0xd9ff4baf, 0x9c0a268b,
	0xe5c84705, 0x0664ce79, 0xf607340b, 0x2c73a371,
	0x9c114b01, 0x7dc45f11, 0xf04e6df5, 0x7a061f19,
	0xb48fd18b, 0x998beded, 0x96d4926f, 0x15d0ce07,
	0xada77ee3, 0x6e4d8db5, 0x9da5f0d3, 0xe7c5b17f,
	0x2c013815, 0x5c1b2909, 0xafc0334f, 0x5a0e524d,
	0xdab13a5f, 0x23ec1397, 0x2d1082c9, 0xcab25ca5,
	0xc66a13ed, 0xf6b10bf7, 0xf9deae99, 0x6e4797f5,
	0x2e6d9c73, 0x3ef9d11f, 0x4366870b, 0x7517d87f,
	0xaaa9860f, 0x1d089f53, 0x1faab03b, 0xbeaea7a1,
	0xe4eba0f1, 0x012d452b, 0x729dce61, 0x02a9a5e1,
	0xdfb3812d, 0xf38a939b, 0x71da2fd5, 0xb57ee20b,
	0xdf4c080b, 0xa58512a7, 0x9a965083, 0xe1ebb671,
}

var mpb = [Lanes]uint32{
	0x4366a8aa, 0xeae33e8d, 0x8d9d9436, 0x6a40f19f,
	0x7317a2f9, 0x44eb0cd6, 0x7a974b74, 0x3abfdf31,
	0x8a7414b1, 0xfd884a6d, 0x3bef688f, 0x77c4f55f,
	0x68ae855e, 0xba3fbab7, 0xcde1de91, 0x91483278,
	0xc7d09d90, 0x93e0c8a8, 0xe73d3403, 0xd92f7329,
	0xd33a52db, 0x91cc84bd, 0xfb80196d, 0x371c703c,
	0xc7ab3146, 0x07968545, 0xf9c77468, 0x9dc079f5,
	0x6b6a1abd, 0x7551d282, 0xa7a92bda, 0xbfbf9f1b,
	0x2d2e6aca, 0x78b0dc39, 0xd8c03f17, 0x0c196ed6,
	0x8d81095b, 0x3f05e2d9, 0x3a859f07, 0xb2a3e7a1,
	0x3a527f41, 0xee3a2c6f, 0x45ab2b50, 0xde088f2b,
	0x8e6a3ffb, 0x0e5a721b, 0xaa2a4a19, 0xbb1f0d3a,
	0x0775cc48, 0x43074467, 0x98ecd921, 0x85e76c04,
	0xdcc8b580, 0x23a9ffa1, 0x722b6c5a, 0xe7bad6c4,
	0x9ac56c28, 0xb908526d, 0x8793ef82, 0x70601794,
	0x092b96c8, 0x6dbe571e, 0xedfedb4e, 0xe578f3a0,
}
